package main

import "fmt"

type SaveCmd struct {
	ID string `arg:"" help:"Artwork ID"`
}

func (cmd *SaveCmd) Run(g *Globals) error {
	it, err := findArtwork(g.Artworks, cmd.ID)
	if err != nil {
		return err
	}
	if !it.Approved() {
		return fmt.Errorf("artwork %s is %s and cannot be bookmarked", it.ID, it.Status)
	}

	g.gallery(withoutRenderer()).ToggleMembership(it.ID)

	if g.Artworks.IsSaved(it.ID) {
		fmt.Fprintf(g.Out, "Saved: %s\n", it.Title)
	} else {
		fmt.Fprintf(g.Out, "Unsaved: %s\n", it.Title)
	}
	return nil
}
