package main

import (
	"archive/cmd/archive/render"
	"archive/internal/catalog"
	"archive/internal/kv"
	"archive/internal/notify"
	"archive/internal/screen"
	"archive/internal/seed"
	"fmt"
	"io"
	"log/slog"
)

type Globals struct {
	Artworks  *catalog.Store
	Bookmarks *catalog.Store
	Hub       *notify.Hub
	KV        kv.Store
	Out       io.Writer
	Render    render.Renderer
	Logger    *slog.Logger
}

// newGlobals loads the persisted collections from store, falling back to the
// seed data, and restores the saved marks of the gallery from the bookmarks.
func newGlobals(store kv.Store, out io.Writer, r render.Renderer, logger *slog.Logger) (*Globals, error) {
	artworks := catalog.NewStore(
		catalog.WithMirror(catalog.NewKVMirror(store, catalog.ArtworksKey)),
		catalog.WithLogger(logger),
	)
	if err := artworks.Initialize(catalog.LoadOrSeed(store, catalog.ArtworksKey, seed.Artworks(), logger)); err != nil {
		return nil, fmt.Errorf("failed to load artworks: %w", err)
	}

	bookmarks := catalog.NewStore(
		catalog.WithMirror(catalog.NewKVMirror(store, catalog.BookmarksKey)),
		catalog.WithLogger(logger),
	)
	if err := bookmarks.Initialize(catalog.LoadOrSeed(store, catalog.BookmarksKey, seed.Bookmarks(), logger)); err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	ids := make([]string, 0, bookmarks.Count())
	for _, it := range bookmarks.List() {
		ids = append(ids, it.ID)
	}
	artworks.Restore(ids)

	hub := notify.NewHub()
	if err := hub.Init(loadNotifications(store, logger)); err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	return &Globals{
		Artworks:  artworks,
		Bookmarks: bookmarks,
		Hub:       hub,
		KV:        store,
		Out:       out,
		Render:    r,
		Logger:    logger,
	}, nil
}

func (g *Globals) screenOptions(extra ...screen.Option) []screen.Option {
	opts := []screen.Option{
		screen.WithRenderer(render.Writer{W: g.Out, R: g.Render}),
		screen.WithLogger(g.Logger),
	}
	return append(opts, extra...)
}

// gallery keeps the bookmarks collection in step with the saved marks.
func (g *Globals) gallery(extra ...screen.Option) *screen.Screen {
	hook := screen.WithToggleHook(func(it catalog.Item, saved bool) {
		if !saved {
			g.Bookmarks.Remove(it.ID)
			return
		}
		if err := g.Bookmarks.Add(it); err != nil {
			g.Logger.Warn("bookmark not stored", "id", it.ID, "error", err)
		}
	})
	return screen.NewGallery(g.Artworks, g.screenOptions(append([]screen.Option{hook}, extra...)...)...)
}
