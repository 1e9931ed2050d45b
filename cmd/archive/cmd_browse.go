package main

import (
	"archive/internal/catalog"
	"archive/internal/ui"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

type BrowseCmd struct{}

func (cmd *BrowseCmd) Run(g *Globals) error {
	gallery := g.gallery()
	state := catalog.FilterState{Category: catalog.AllCategories, Sort: catalog.SortBestMatch}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Title, artist, curator or tag").
				Value(&state.Query),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions(gallery.Facets())...).
				Value(&state.Category),
			huh.NewSelect[catalog.SortOrder]().
				Title("Sort").
				Options(sortOptions()...).
				Value(&state.Sort),
		),
	).WithTheme(ui.FormTheme())

	if err := form.Run(); err != nil {
		return handleFormError(err)
	}

	state.Query = strings.TrimSpace(state.Query)
	renderBrowseSummary(g, state)
	gallery.Apply(state, 1)
	return nil
}

func categoryOptions(facets []catalog.Facet) []huh.Option[string] {
	total := 0
	for _, f := range facets {
		total += f.Count
	}
	opts := []huh.Option[string]{
		huh.NewOption(fmt.Sprintf("All categories (%d)", total), catalog.AllCategories),
	}
	for _, f := range facets {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d)", f.Category, f.Count), f.Category))
	}
	return opts
}

func sortOptions() []huh.Option[catalog.SortOrder] {
	opts := make([]huh.Option[catalog.SortOrder], len(catalog.SortOrders))
	for i, o := range catalog.SortOrders {
		opts[i] = huh.NewOption(o.Label(), o)
	}
	return opts
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func renderBrowseSummary(g *Globals, state catalog.FilterState) {
	category := state.Category
	if category == catalog.AllCategories {
		category = "All categories"
	}
	fields := []ui.Field{
		{Label: "Search", Value: state.Query},
		{Label: "Category", Value: category},
		{Label: "Sort", Value: state.Sort.Label()},
	}
	fmt.Fprint(g.Out, ui.RenderSummary("Browse gallery", fields, -1))
}
