package proptest

import (
	"archive/internal/catalog"
	"archive/internal/kv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

const (
	minItems     = 0
	maxItems     = 20
	typicalMin   = 1
	typicalMax   = 10
	maxPageSize  = 12
	maxPageCount = 60
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type ItemGenOpt func(*itemGenConfig)

type itemGenConfig struct {
	category *string
}

func WithCategory(category string) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.category = &category
	}
}

func GenItem(t *rapid.T, opts ...ItemGenOpt) catalog.Item {
	cfg := &itemGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	category := categoryGen.Draw(t, "category")
	if cfg.category != nil {
		category = *cfg.category
	}

	it := catalog.NewItem(titleGen.Draw(t, "title"), artistGen.Draw(t, "artist"), category)
	it.TotalRatings = rapid.IntRange(0, 500).Draw(t, "totalRatings")
	if it.TotalRatings > 0 {
		it.Rating = float64(rapid.IntRange(10, 50).Draw(t, "rating")) / 10
	}
	it = it.WithTags(rapid.SliceOfN(tagGen, 0, 3).Draw(t, "tags")...)
	return it.WithStatus(catalog.StatusApproved)
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenItem(opts ...ItemGenOpt) catalog.Item {
	return GenItem(h.T, opts...)
}

// StoreHarness wires a store to an in-memory kv mirror.
type StoreHarness struct {
	Harness
	Store *catalog.Store
	KV    *kv.Memory
}

func (h *StoreHarness) MustAddItem(opts ...ItemGenOpt) catalog.Item {
	it := h.GenItem(opts...)
	if err := h.Store.Add(it); err != nil {
		h.T.Fatalf("failed to add item: %v", err)
	}
	return it
}

func (h *StoreHarness) AddItems(minCount, maxCount int) []catalog.Item {
	var added []catalog.Item
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numItems")
	for range n {
		it := h.GenItem()
		if err := h.Store.Add(it); err == nil {
			added = append(added, it)
		}
	}
	return added
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		mem := kv.NewMemory()
		store := catalog.NewStore(
			catalog.WithMirror(catalog.NewKVMirror(mem, catalog.BookmarksKey)),
			catalog.WithLogger(quietLogger),
		)

		fn(&StoreHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Store:   store,
			KV:      mem,
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		fn(&Harness{T: rt, Dir: iterDir})
	})
}
