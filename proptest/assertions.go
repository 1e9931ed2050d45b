package proptest

import (
	"archive/internal/catalog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

var itemCmpOpts = cmp.Options{
	cmpopts.EquateApproxTime(0),
	cmpopts.EquateEmpty(),
}

func assertItemsEqual(t *rapid.T, expected, actual []catalog.Item) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, itemCmpOpts...); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Item) {
	t.Helper()
	superIDs := make(map[string]bool)
	for _, it := range superset {
		superIDs[it.ID] = true
	}
	for _, it := range subset {
		if !superIDs[it.ID] {
			t.Fatalf("subset contains ID %s not in superset", it.ID)
		}
	}
}

func titleKey(it catalog.Item) string {
	return strings.ToLower(it.Title) + "\x00" + it.ID
}

func assertSortedBy(t *rapid.T, items []catalog.Item, order catalog.SortOrder) {
	t.Helper()
	for i := 0; i < len(items)-1; i++ {
		a, b := items[i], items[i+1]
		var inOrder bool
		switch order {
		case catalog.SortAscending:
			inOrder = titleKey(a) <= titleKey(b)
		case catalog.SortDescending:
			inOrder = titleKey(a) >= titleKey(b)
		case catalog.SortMostRated:
			inOrder = a.TotalRatings > b.TotalRatings ||
				(a.TotalRatings == b.TotalRatings && titleKey(a) <= titleKey(b))
		case catalog.SortLeastRated:
			inOrder = a.TotalRatings < b.TotalRatings ||
				(a.TotalRatings == b.TotalRatings && titleKey(a) <= titleKey(b))
		default:
			inOrder = true
		}
		if !inOrder {
			t.Fatalf("%s order violated at positions %d, %d: %q then %q", order, i, i+1, a.Title, b.Title)
		}
	}
}
