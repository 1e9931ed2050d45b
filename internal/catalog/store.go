package catalog

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Mirror receives the full collection after every mutation.
type Mirror interface {
	Save(items []Item) error
}

type StoreOption func(*Store)

func WithMirror(m Mirror) StoreOption {
	return func(s *Store) {
		s.mirror = m
	}
}

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// Store holds the ordered item collection of one screen together with the
// set of item IDs the user saved from it.
type Store struct {
	items       []Item
	index       map[string]int
	saved       map[string]struct{}
	initialized bool
	mirror      Mirror
	logger      *slog.Logger
	mu          sync.RWMutex
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		index:  make(map[string]int),
		saved:  make(map[string]struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize sets the backing collection. Duplicate IDs resolve to the last
// record, kept at the position of the first occurrence.
func (s *Store) Initialize(items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}

	s.items = make([]Item, 0, len(items))
	s.index = make(map[string]int, len(items))
	for _, it := range items {
		if pos, ok := s.index[it.ID]; ok {
			s.logger.Debug("duplicate item id, last write wins", "id", it.ID)
			s.items[pos] = it.clone()
			continue
		}
		s.index[it.ID] = len(s.items)
		s.items = append(s.items, it.clone())
	}
	s.initialized = true
	return nil
}

func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listUnlocked()
}

func (s *Store) listUnlocked() []Item {
	items := make([]Item, len(s.items))
	for i, it := range s.items {
		items[i] = it.clone()
	}
	return items
}

func (s *Store) Get(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return s.items[pos].clone(), nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Add(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if _, exists := s.index[it.ID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyExists, it.ID)
	}
	s.index[it.ID] = len(s.items)
	s.items = append(s.items, it.clone())
	s.initialized = true
	snapshot := s.listUnlocked()
	s.mu.Unlock()

	s.writeThrough(snapshot)
	return nil
}

func (s *Store) Update(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	pos, ok := s.index[it.ID]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.items[pos] = it.clone()
	snapshot := s.listUnlocked()
	s.mu.Unlock()

	s.writeThrough(snapshot)
	return nil
}

func (s *Store) SetStatus(id string, status Status) error {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.items[pos].Status = status
	snapshot := s.listUnlocked()
	s.mu.Unlock()

	s.writeThrough(snapshot)
	return nil
}

// Remove deletes the item permanently. Unknown IDs are a no-op.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}

	s.items = slices.Delete(s.items, pos, pos+1)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	delete(s.saved, id)
	snapshot := s.listUnlocked()
	s.mu.Unlock()

	s.writeThrough(snapshot)
	return true
}

func (s *Store) writeThrough(items []Item) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Save(items); err != nil {
		s.logger.Warn("catalog mirror write failed", "error", err, "items", len(items))
	}
}

// Toggle flips the saved state of id and returns the new set. IDs outside
// the collection are ignored.
func (s *Store) Toggle(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; ok {
		if _, saved := s.saved[id]; saved {
			delete(s.saved, id)
		} else {
			s.saved[id] = struct{}{}
		}
	}
	return s.savedUnlocked()
}

// Unsave removes id from the saved set unconditionally.
func (s *Store) Unsave(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.saved, id)
	return s.savedUnlocked()
}

// Restore replaces the saved set. IDs outside the collection are kept so a
// later Initialize can still resolve them.
func (s *Store) Restore(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.saved[id] = struct{}{}
	}
}

func (s *Store) Saved() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedUnlocked()
}

func (s *Store) savedUnlocked() []string {
	ids := make([]string, 0, len(s.saved))
	for id := range s.saved {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) IsSaved(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.saved[id]
	return ok
}

func (s *Store) Filter(f FilterState) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match := BuildPredicate(f)
	var results []Item
	for _, it := range s.items {
		if match(it) {
			results = append(results, it.clone())
		}
	}

	sortItems(results, f)
	return results
}

func (s *Store) Facets() []Facet {
	return CountCategories(s.List())
}
