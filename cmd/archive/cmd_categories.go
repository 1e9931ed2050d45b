package main

import "fmt"

type CategoriesCmd struct{}

func (cmd *CategoriesCmd) Run(g *Globals) error {
	facets := g.gallery(withoutRenderer()).Facets()
	fmt.Fprint(g.Out, g.Render.RenderFacets(facets))
	return nil
}
