package catalog

import (
	"cmp"
	"slices"
	"strings"
)

func BuildPredicate(f FilterState) func(Item) bool {
	query := strings.ToLower(f.Query)
	category := f.Category
	if category == AllCategories {
		category = ""
	}

	return func(it Item) bool {
		if category != "" && it.Category != category {
			return false
		}
		if query != "" && !matchesQuery(it, query) {
			return false
		}
		return true
	}
}

func matchesQuery(it Item, query string) bool {
	return matchRank(it, query) > 0
}

// matchRank expects a lowercased query and returns 0 when nothing matches.
// Higher ranks are better matches.
func matchRank(it Item, query string) int {
	title := strings.ToLower(it.Title)
	if strings.HasPrefix(title, query) {
		return 4
	}
	if strings.Contains(title, query) {
		return 3
	}
	if strings.Contains(strings.ToLower(it.Artist), query) ||
		strings.Contains(strings.ToLower(it.Curator), query) {
		return 2
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return 1
		}
	}
	return 0
}

func sortItems(items []Item, f FilterState) {
	switch f.Sort {
	case SortAscending, SortDescending:
		desc := f.Sort == SortDescending
		slices.SortStableFunc(items, func(a, b Item) int {
			c := compareTitles(a, b)
			if desc {
				return -c
			}
			return c
		})
	case SortMostRated, SortLeastRated:
		most := f.Sort == SortMostRated
		slices.SortStableFunc(items, func(a, b Item) int {
			c := cmp.Compare(a.TotalRatings, b.TotalRatings)
			if most {
				c = -c
			}
			if c != 0 {
				return c
			}
			return compareTitles(a, b)
		})
	default:
		if f.Query == "" {
			return
		}
		query := strings.ToLower(f.Query)
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp.Compare(matchRank(b, query), matchRank(a, query))
		})
	}
}

func compareTitles(a, b Item) int {
	if c := cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
		return c
	}
	// Tiebreaker: ID keeps equal titles in a deterministic order
	return cmp.Compare(a.ID, b.ID)
}
