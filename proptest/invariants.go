package proptest

import (
	"archive/internal/catalog"
	"slices"

	"pgregory.net/rapid"
)

func verifyStructuralInvariants(t *rapid.T, store *catalog.Store) {
	count := store.Count()
	list := store.List()

	if count != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", count, len(list))
	}

	seen := make(map[string]bool)
	for _, it := range list {
		if it.ID == "" {
			t.Fatalf("item %q has empty ID", it.Title)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate ID %q found in List()", it.ID)
		}
		seen[it.ID] = true
	}

	saved := store.Saved()
	if !slices.IsSorted(saved) {
		t.Fatalf("Saved() not sorted: %v", saved)
	}
	if len(slices.Compact(slices.Clone(saved))) != len(saved) {
		t.Fatalf("Saved() has duplicates: %v", saved)
	}
}
