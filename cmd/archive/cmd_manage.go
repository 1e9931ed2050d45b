package main

import (
	"archive/internal/screen"
	"fmt"
)

type ManageCmd struct {
	FilterFlags `embed:""`
}

func (cmd *ManageCmd) Run(g *Globals) error {
	state, err := cmd.state()
	if err != nil {
		return err
	}
	screen.NewManageArtworks(g.Artworks, g.screenOptions()...).Apply(state, cmd.Page)
	return nil
}

type ManageRmCmd struct {
	ID string `arg:"" help:"Artwork ID"`
}

func (cmd *ManageRmCmd) Run(g *Globals) error {
	it, err := findArtwork(g.Artworks, cmd.ID)
	if err != nil {
		return err
	}

	screen.NewManageArtworks(g.Artworks, screen.WithLogger(g.Logger)).Delete(it.ID)
	g.Bookmarks.Remove(it.ID)

	fmt.Fprintf(g.Out, "Deleted: %s\n", it.Title)
	return nil
}
