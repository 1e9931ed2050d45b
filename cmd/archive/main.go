package main

import (
	"archive/cmd/archive/render"
	"archive/internal/config"
	"archive/internal/kv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Gallery       GalleryCmd       `cmd:"" aliases:"g" help:"Browse approved artworks"`
	Browse        BrowseCmd        `cmd:"" aliases:"b" help:"Pick gallery filters interactively"`
	Save          SaveCmd          `cmd:"" help:"Bookmark an artwork, or remove the bookmark if already saved"`
	Bookmarks     BookmarksCmd     `cmd:"" aliases:"bm" help:"List bookmarked artworks"`
	Unsave        UnsaveCmd        `cmd:"" help:"Remove a bookmark"`
	Rate          RateCmd          `cmd:"" help:"Rate an artwork from 1 to 5 stars"`
	Related       RelatedCmd       `cmd:"" help:"Show other artworks of the same category"`
	Categories    CategoriesCmd    `cmd:"" aliases:"cat" help:"Count artworks per category"`
	Manage        ManageCmd        `cmd:"" help:"List every artwork in the archive"`
	ManageRm      ManageRmCmd      `cmd:"" help:"Delete an artwork from the archive"`
	Submit        SubmitCmd        `cmd:"" help:"Submit an artwork for review"`
	Review        ReviewCmd        `cmd:"" help:"List submissions awaiting review"`
	Approve       ApproveCmd       `cmd:"" help:"Approve or reject a pending submission"`
	Notifications NotificationsCmd `cmd:"" aliases:"n" help:"Show notifications"`

	Storage string `name:"storage" short:"S" env:"ARCHIVE_STORAGE" help:"Path to the storage file"`
	Verbose bool   `short:"v" env:"ARCHIVE_VERBOSE" help:"Log debug output to stderr"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	logger := newLogger(os.Stderr, c.Verbose)
	slog.SetDefault(logger)

	storagePath := config.DefaultStoragePath()
	if c.Storage != "" {
		p, err := config.ExpandPath(c.Storage)
		if err != nil {
			return fmt.Errorf("invalid storage path: %w", err)
		}
		storagePath = p
	}

	store, err := kv.OpenFile(storagePath)
	if store == nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	if err != nil {
		logger.Warn("starting from empty storage", "path", config.ShortenPath(storagePath), "error", err)
	}

	globals, err := newGlobals(store, os.Stdout, render.NewLipglossRendererAuto(os.Stdout), logger)
	if err != nil {
		return err
	}
	ctx.Bind(globals)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("archive"),
		kong.Description("Historical art archive"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
