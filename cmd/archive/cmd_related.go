package main

import "archive/internal/screen"

type RelatedCmd struct {
	ID   string `arg:"" help:"Artwork ID"`
	Page int    `short:"p" default:"1" help:"Page to show"`
}

func (cmd *RelatedCmd) Run(g *Globals) error {
	it, err := findArtwork(g.Artworks, cmd.ID)
	if err != nil {
		return err
	}
	screen.NewRelated(g.Artworks, it, g.screenOptions()...).GoTo(cmd.Page)
	return nil
}
