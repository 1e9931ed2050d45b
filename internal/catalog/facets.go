package catalog

import (
	"cmp"
	"slices"

	"github.com/gensword/collections"
)

// CountCategories returns one facet per category, most common first.
func CountCategories(items []Item) []Facet {
	if len(items) == 0 {
		return nil
	}

	counter := collections.NewCounter()
	distinct := make(map[string]struct{})
	for _, it := range items {
		counter.Add(it.Category)
		distinct[it.Category] = struct{}{}
	}

	common := counter.MostCommon(len(distinct))
	facets := make([]Facet, 0, len(common))
	for _, c := range common {
		facets = append(facets, Facet{Category: c.Key.(string), Count: c.Value})
	}

	// MostCommon leaves ties in map order
	slices.SortStableFunc(facets, func(a, b Facet) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return facets
}
