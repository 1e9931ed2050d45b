package main

import (
	"archive/internal/screen"
	"fmt"
)

type BookmarksCmd struct {
	FilterFlags `embed:""`
}

func (cmd *BookmarksCmd) Run(g *Globals) error {
	state, err := cmd.state()
	if err != nil {
		return err
	}
	screen.NewBookmarks(g.Bookmarks, g.screenOptions()...).Apply(state, cmd.Page)
	return nil
}

type UnsaveCmd struct {
	ID string `arg:"" help:"Artwork ID"`
}

func (cmd *UnsaveCmd) Run(g *Globals) error {
	it, err := g.Bookmarks.Get(cmd.ID)
	if err != nil {
		return fmt.Errorf("no bookmark found with id %s: %w", cmd.ID, err)
	}

	screen.NewBookmarks(g.Bookmarks, screen.WithLogger(g.Logger)).ToggleMembership(cmd.ID)

	fmt.Fprintf(g.Out, "Removed bookmark: %s\n", it.Title)
	return nil
}
