package main

import (
	"archive/internal/rating"
	"archive/internal/screen"
	"errors"
	"fmt"
)

type RateCmd struct {
	ID    string `arg:"" help:"Artwork ID"`
	Stars int    `arg:"" help:"Stars from 1 to 5"`
}

func (cmd *RateCmd) Run(g *Globals) error {
	it, err := findArtwork(g.Artworks, cmd.ID)
	if err != nil {
		return err
	}

	s := g.gallery(withoutRenderer(), screen.WithRateHandler(func(id string, stars int) {
		g.Logger.Debug("rating committed", "id", id, "stars", stars)
		fmt.Fprintf(g.Out, "Rated %s: %d/%d\n", it.Title, stars, rating.MaxStars)
	}))

	if err := s.Rate(it.ID, cmd.Stars); err != nil {
		if errors.Is(err, rating.ErrOutOfRange) {
			return fmt.Errorf("stars must be between %d and %d", rating.MinStars, rating.MaxStars)
		}
		return err
	}
	return nil
}
