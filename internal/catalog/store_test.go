package catalog_test

import (
	"archive/internal/catalog"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(id, title, category string) catalog.Item {
	return catalog.Item{ID: id, Title: title, Artist: "Unknown", Category: category, Status: catalog.StatusApproved}
}

func newTestStore(t *testing.T, items ...catalog.Item) *catalog.Store {
	t.Helper()
	s := catalog.NewStore()
	require.NoError(t, s.Initialize(items))
	return s
}

type recordingMirror struct {
	saves [][]catalog.Item
	err   error
}

func (m *recordingMirror) Save(items []catalog.Item) error {
	m.saves = append(m.saves, items)
	return m.err
}

func TestStore_Initialize(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		s := newTestStore(t,
			newItem("c", "Third", "Modern"),
			newItem("a", "First", "Modern"),
			newItem("b", "Second", "Modern"),
		)

		items := s.List()

		require.Len(t, items, 3)
		assert.Equal(t, "c", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
		assert.Equal(t, "b", items[2].ID)
	})

	t.Run("duplicate ids keep last record at first position", func(t *testing.T) {
		s := newTestStore(t,
			newItem("a", "Old", "Modern"),
			newItem("b", "Other", "Modern"),
			newItem("a", "New", "Baroque"),
		)

		items := s.List()

		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "New", items[0].Title)
		assert.Equal(t, "Baroque", items[0].Category)
	})

	t.Run("second call is rejected", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"))

		err := s.Initialize([]catalog.Item{newItem("b", "Second", "Modern")})

		assert.ErrorIs(t, err, catalog.ErrAlreadyInitialized)
		assert.Equal(t, 1, s.Count())
	})
}

func TestStore_List(t *testing.T) {
	t.Run("returns copies", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern").WithTags("x"))

		items := s.List()
		items[0].Title = "changed"
		items[0].Tags[0] = "changed"

		got, err := s.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.Equal(t, []string{"x"}, got.Tags)
	})

	t.Run("returns empty slice when store is empty", func(t *testing.T) {
		s := newTestStore(t)

		assert.Empty(t, s.List())
	})
}

func TestStore_Get(t *testing.T) {
	t.Run("returns error when item not found", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Get("missing")

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestStore_Add(t *testing.T) {
	t.Run("appends new item", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"))

		err := s.Add(catalog.NewItem("Water Lilies", "Claude Monet", "Impressionism"))

		require.NoError(t, err)
		items := s.List()
		require.Len(t, items, 2)
		assert.Equal(t, "Water Lilies", items[1].Title)
		assert.Equal(t, catalog.StatusPending, items[1].Status)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"))

		err := s.Add(newItem("a", "Again", "Modern"))

		assert.ErrorIs(t, err, catalog.ErrAlreadyExists)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("rejects invalid item", func(t *testing.T) {
		s := newTestStore(t)

		err := s.Add(newItem("a", "  ", "Modern"))

		assert.ErrorIs(t, err, catalog.ErrEmptyTitle)
		assert.Equal(t, 0, s.Count())
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("replaces existing item in place", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"), newItem("b", "Second", "Modern"))

		updated := newItem("a", "Renamed", "Modern")
		require.NoError(t, s.Update(updated))

		items := s.List()
		assert.Equal(t, "Renamed", items[0].Title)
	})

	t.Run("returns error when item not found", func(t *testing.T) {
		s := newTestStore(t)

		err := s.Update(newItem("a", "First", "Modern"))

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestStore_SetStatus(t *testing.T) {
	s := newTestStore(t, newItem("a", "First", "Modern").WithStatus(catalog.StatusPending))

	require.NoError(t, s.SetStatus("a", catalog.StatusApproved))

	got, _ := s.Get("a")
	assert.Equal(t, catalog.StatusApproved, got.Status)
	assert.ErrorIs(t, s.SetStatus("missing", catalog.StatusApproved), catalog.ErrNotFound)
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes existing item and keeps order", func(t *testing.T) {
		s := newTestStore(t,
			newItem("a", "First", "Modern"),
			newItem("b", "Second", "Modern"),
			newItem("c", "Third", "Modern"),
		)

		removed := s.Remove("b")

		assert.True(t, removed)
		items := s.List()
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "c", items[1].ID)

		got, err := s.Get("c")
		require.NoError(t, err)
		assert.Equal(t, "Third", got.Title)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"))

		assert.False(t, s.Remove("missing"))
		assert.False(t, s.Remove("missing"))
		assert.Equal(t, 1, s.Count())
	})

	t.Run("drops removed item from saved set", func(t *testing.T) {
		s := newTestStore(t, newItem("a", "First", "Modern"))
		s.Toggle("a")

		s.Remove("a")

		assert.Empty(t, s.Saved())
	})
}

func TestStore_Toggle(t *testing.T) {
	t.Run("flips membership", func(t *testing.T) {
		s := newTestStore(t, newItem("x", "Venus Rising", "Renaissance"))

		assert.Equal(t, []string{"x"}, s.Toggle("x"))
		assert.True(t, s.IsSaved("x"))
		assert.Empty(t, s.Toggle("x"))
		assert.False(t, s.IsSaved("x"))
	})

	t.Run("ignores ids outside the collection", func(t *testing.T) {
		s := newTestStore(t, newItem("x", "Venus Rising", "Renaissance"))

		assert.Empty(t, s.Toggle("missing"))
	})

	t.Run("returns sorted set", func(t *testing.T) {
		s := newTestStore(t, newItem("b", "B", "Modern"), newItem("a", "A", "Modern"))

		s.Toggle("b")
		saved := s.Toggle("a")

		assert.Equal(t, []string{"a", "b"}, saved)
	})
}

func TestStore_Unsave(t *testing.T) {
	s := newTestStore(t, newItem("x", "Venus Rising", "Renaissance"))
	s.Toggle("x")

	assert.Empty(t, s.Unsave("x"))
	assert.Empty(t, s.Unsave("x"))
	assert.False(t, s.IsSaved("x"))
}

func TestStore_Restore(t *testing.T) {
	s := newTestStore(t, newItem("x", "Venus Rising", "Renaissance"))

	s.Restore([]string{"x", "y"})

	assert.Equal(t, []string{"x", "y"}, s.Saved())
	assert.Equal(t, []string{"y"}, s.Toggle("x"))
}

func TestStore_Mirror(t *testing.T) {
	t.Run("writes full collection after each mutation", func(t *testing.T) {
		m := &recordingMirror{}
		s := catalog.NewStore(catalog.WithMirror(m))
		require.NoError(t, s.Initialize([]catalog.Item{newItem("a", "First", "Modern")}))
		assert.Empty(t, m.saves)

		require.NoError(t, s.Add(newItem("b", "Second", "Modern")))
		s.Remove("a")
		s.Remove("a")

		require.Len(t, m.saves, 2)
		assert.Len(t, m.saves[0], 2)
		require.Len(t, m.saves[1], 1)
		assert.Equal(t, "b", m.saves[1][0].ID)
	})

	t.Run("swallows mirror failures", func(t *testing.T) {
		m := &recordingMirror{err: errors.New("quota exceeded")}
		s := catalog.NewStore(catalog.WithMirror(m))
		require.NoError(t, s.Initialize([]catalog.Item{newItem("a", "First", "Modern")}))

		assert.True(t, s.Remove("a"))
		assert.Equal(t, 0, s.Count())
	})
}

func TestStore_Facets(t *testing.T) {
	s := newTestStore(t,
		newItem("1", "A", "Baroque"),
		newItem("2", "B", "Modern"),
		newItem("3", "C", "Baroque"),
		newItem("4", "D", "Ancient"),
	)

	facets := s.Facets()

	assert.Equal(t, []catalog.Facet{
		{Category: "Baroque", Count: 2},
		{Category: "Ancient", Count: 1},
		{Category: "Modern", Count: 1},
	}, facets)
}
