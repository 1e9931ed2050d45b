package proptest

import (
	"archive/internal/catalog"
	"slices"

	"pgregory.net/rapid"
)

// StateTracker is the reference model of a store: ordered IDs plus the
// saved set.
type StateTracker struct {
	order []string
	saved map[string]bool
}

func newStateTracker() *StateTracker {
	return &StateTracker{saved: make(map[string]bool)}
}

func (s *StateTracker) Exists(id string) bool {
	return slices.Contains(s.order, id)
}

func (s *StateTracker) Add(it catalog.Item) error {
	if s.Exists(it.ID) {
		return catalog.ErrAlreadyExists
	}
	s.order = append(s.order, it.ID)
	return nil
}

func (s *StateTracker) Remove(id string) bool {
	i := slices.Index(s.order, id)
	if i < 0 {
		return false
	}
	s.order = slices.Delete(s.order, i, i+1)
	delete(s.saved, id)
	return true
}

func (s *StateTracker) Toggle(id string) {
	if !s.Exists(id) {
		return
	}
	if s.saved[id] {
		delete(s.saved, id)
	} else {
		s.saved[id] = true
	}
}

func (s *StateTracker) Unsave(id string) {
	delete(s.saved, id)
}

func (s *StateTracker) IDs() []string {
	return slices.Clone(s.order)
}

func (s *StateTracker) Saved() []string {
	ids := make([]string, 0, len(s.saved))
	for id := range s.saved {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

type CheckedStore struct {
	real  *catalog.Store
	model *StateTracker
	t     *rapid.T
}

func NewCheckedStore(t *rapid.T, store *catalog.Store) *CheckedStore {
	return &CheckedStore{
		real:  store,
		model: newStateTracker(),
		t:     t,
	}
}

func (c *CheckedStore) Model() *StateTracker {
	return c.model
}

func (c *CheckedStore) verify() {
	verifyStructuralInvariants(c.t, c.real)

	ids := make([]string, 0, c.real.Count())
	for _, it := range c.real.List() {
		ids = append(ids, it.ID)
	}
	if !slices.Equal(ids, c.model.IDs()) {
		c.t.Fatalf("order divergence: real=%v model=%v", ids, c.model.IDs())
	}
	if !slices.Equal(c.real.Saved(), c.model.Saved()) {
		c.t.Fatalf("saved divergence: real=%v model=%v", c.real.Saved(), c.model.Saved())
	}
}

func (c *CheckedStore) Add(it catalog.Item) error {
	realErr := c.real.Add(it)
	modelErr := c.model.Add(it)
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("Add divergence: real=%v model=%v", realErr, modelErr)
	}
	c.verify()
	return realErr
}

func (c *CheckedStore) Remove(id string) bool {
	realOK := c.real.Remove(id)
	modelOK := c.model.Remove(id)
	if realOK != modelOK {
		c.t.Fatalf("Remove divergence: real=%v model=%v", realOK, modelOK)
	}
	c.verify()
	return realOK
}

func (c *CheckedStore) Toggle(id string) {
	c.real.Toggle(id)
	c.model.Toggle(id)
	c.verify()
}

func (c *CheckedStore) Unsave(id string) {
	c.real.Unsave(id)
	c.model.Unsave(id)
	c.verify()
}

func (c *CheckedStore) Get(id string) (catalog.Item, error) {
	it, err := c.real.Get(id)
	if (err == nil) != c.model.Exists(id) {
		c.t.Fatalf("Get divergence: real err=%v model exists=%v", err, c.model.Exists(id))
	}
	return it, err
}

func (c *CheckedStore) Filter(f catalog.FilterState) []catalog.Item {
	results := c.real.Filter(f)
	assertSubset(c.t, results, c.real.List())
	return results
}
