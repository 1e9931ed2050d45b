package main

import (
	"archive/internal/catalog"
	"archive/internal/screen"
	"archive/internal/ui"
	"fmt"
	"strings"
)

type SubmitCmd struct {
	Title    string   `arg:"" help:"Artwork title"`
	Artist   string   `short:"a" help:"Artist name"`
	Category string   `short:"c" required:"" help:"Category, e.g. Baroque"`
	Period   string   `help:"Period or movement"`
	Year     int      `short:"y" help:"Year of creation"`
	Tags     []string `short:"t" help:"Tags (repeatable)"`
}

func (cmd *SubmitCmd) Run(g *Globals) error {
	it := catalog.NewItem(strings.TrimSpace(cmd.Title), cmd.Artist, cmd.Category).
		WithPeriod(cmd.Period).
		WithTags(cmd.Tags...)
	it.Year = cmd.Year

	if err := g.Artworks.Add(it); err != nil {
		return fmt.Errorf("failed to submit %q: %w", cmd.Title, err)
	}

	checks := []string{"Added to " + it.Category, "Queued for review"}
	fmt.Fprint(g.Out, ui.RenderConfirmation("Submitted "+it.Title, it.ID, checks))
	return nil
}

type ReviewCmd struct {
	Page int `short:"p" default:"1" help:"Page to show"`
}

func (cmd *ReviewCmd) Run(g *Globals) error {
	screen.NewReviewArts(g.Artworks, g.Hub, g.screenOptions()...).GoTo(cmd.Page)
	return nil
}

type ApproveCmd struct {
	ID     string `arg:"" help:"Artwork ID"`
	Reject bool   `short:"r" help:"Reject the submission instead"`
}

func (cmd *ApproveCmd) Run(g *Globals) error {
	it, err := findArtwork(g.Artworks, cmd.ID)
	if err != nil {
		return err
	}

	r := screen.NewReviewArts(g.Artworks, g.Hub, screen.WithLogger(g.Logger))
	verb := "Approved"
	if cmd.Reject {
		verb = "Rejected"
		err = r.Reject(it.ID)
	} else {
		err = r.Approve(it.ID)
	}
	if err != nil {
		return err
	}

	if err := saveNotifications(g.KV, g.Hub); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "%s: %s\n", verb, it.Title)
	return nil
}
