// Package screen binds a catalog store, its filter and page state, and the
// per-item rating widgets into the view a renderer draws and the callbacks it
// fires back.
package screen

import (
	"archive/internal/catalog"
	"archive/internal/paging"
	"archive/internal/rating"
	"fmt"
	"log/slog"
)

// Mode selects what the membership control of a screen does.
type Mode int

const (
	// ModeFlip saves or unsaves the item.
	ModeFlip Mode = iota
	// ModeRemove drops the item from the collection; pressing it again on
	// the same id does nothing.
	ModeRemove
)

type View struct {
	Name        string
	Items       []catalog.Item
	Matches     int
	CurrentPage int
	TotalPages  int
	Window      []paging.Marker
	Saved       []string
	Filter      catalog.FilterState
}

func (v View) IsEmpty() bool {
	return len(v.Items) == 0
}

func (v View) IsSaved(id string) bool {
	for _, s := range v.Saved {
		if s == id {
			return true
		}
	}
	return false
}

type Events struct {
	OnQueryChange      func(query string)
	OnCategoryChange   func(category string)
	OnSortChange       func(order catalog.SortOrder)
	OnPageChange       func(page int)
	OnRate             func(id string, stars int)
	OnToggleMembership func(id string)
}

type Renderer interface {
	Render(View)
}

// ToggleHook observes membership flips on a ModeFlip screen.
type ToggleHook func(it catalog.Item, saved bool)

type Option func(*Screen)

func WithRenderer(r Renderer) Option {
	return func(s *Screen) { s.renderer = r }
}

func WithRateHandler(fn rating.RateFunc) Option {
	return func(s *Screen) { s.onRate = fn }
}

func WithToggleHook(fn ToggleHook) Option {
	return func(s *Screen) { s.onToggle = fn }
}

func WithCenterBias(b paging.CenterBias) Option {
	return func(s *Screen) { s.bias = b }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Screen) { s.logger = l }
}

type Screen struct {
	name     string
	store    *catalog.Store
	filter   catalog.FilterState
	page     int
	size     int
	mode     Mode
	base     func(catalog.Item) bool
	bias     paging.CenterBias
	widgets  map[string]*rating.Widget
	onRate   rating.RateFunc
	onToggle ToggleHook
	renderer Renderer
	logger   *slog.Logger
}

func New(name string, store *catalog.Store, size int, mode Mode, opts ...Option) *Screen {
	s := &Screen{
		name:    name,
		store:   store,
		filter:  catalog.FilterState{Category: catalog.AllCategories, Sort: catalog.SortBestMatch},
		page:    1,
		size:    size,
		mode:    mode,
		widgets: make(map[string]*rating.Widget),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onRate == nil {
		s.onRate = func(id string, stars int) {
			s.logger.Info("rating committed", "screen", s.name, "id", id, "stars", stars)
		}
	}
	return s
}

func (s *Screen) Name() string                { return s.name }
func (s *Screen) Store() *catalog.Store       { return s.store }
func (s *Screen) Filter() catalog.FilterState { return s.filter }
func (s *Screen) PageSize() int               { return s.size }

func (s *Screen) SetQuery(q string) {
	s.filter.Query = q
	s.page = 1
	s.Refresh()
}

func (s *Screen) SetCategory(c string) {
	if c == "" {
		c = catalog.AllCategories
	}
	s.filter.Category = c
	s.page = 1
	s.Refresh()
}

func (s *Screen) SetSort(o catalog.SortOrder) {
	s.filter.Sort = o
	s.page = 1
	s.Refresh()
}

// Apply replaces filter and page together and renders once.
func (s *Screen) Apply(f catalog.FilterState, page int) {
	if f.Category == "" {
		f.Category = catalog.AllCategories
	}
	if f.Sort == "" {
		f.Sort = catalog.SortBestMatch
	}
	s.filter = f
	s.page = page
	s.Refresh()
}

func (s *Screen) GoTo(page int) {
	s.page = page
	s.Refresh()
}

// Widget returns the rating widget of id, creating it on first use.
func (s *Screen) Widget(id string) *rating.Widget {
	w, ok := s.widgets[id]
	if !ok {
		w = rating.NewWidget(id, s.onRate)
		s.widgets[id] = w
	}
	return w
}

// Rate commits stars for an item this screen shows. Items hidden by the
// screen's base filter are reported as not found.
func (s *Screen) Rate(id string, stars int) error {
	it, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if s.base != nil && !s.base(it) {
		return fmt.Errorf("%w: %s is not shown on %s", catalog.ErrNotFound, id, s.name)
	}
	return s.Widget(id).Commit(stars)
}

func (s *Screen) ToggleMembership(id string) {
	switch s.mode {
	case ModeRemove:
		s.store.Unsave(id)
		if s.store.Remove(id) {
			delete(s.widgets, id)
			s.logger.Debug("item removed", "screen", s.name, "id", id)
		}
	default:
		it, err := s.store.Get(id)
		if err != nil {
			s.logger.Debug("toggle on unknown item ignored", "screen", s.name, "id", id)
			break
		}
		s.store.Toggle(id)
		saved := s.store.IsSaved(id)
		if s.onToggle != nil {
			s.onToggle(it, saved)
		}
	}
	s.Refresh()
}

// Delete removes the item permanently regardless of the screen mode.
func (s *Screen) Delete(id string) bool {
	ok := s.store.Remove(id)
	if ok {
		delete(s.widgets, id)
	}
	s.Refresh()
	return ok
}

func (s *Screen) visible() []catalog.Item {
	items := s.store.Filter(s.filter)
	if s.base == nil {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if s.base(it) {
			kept = append(kept, it)
		}
	}
	return kept
}

func (s *Screen) View() View {
	items := s.visible()
	p := paging.Slice(items, s.size, s.page)
	s.page = p.Current

	return View{
		Name:        s.name,
		Items:       p.Items,
		Matches:     len(items),
		CurrentPage: p.Current,
		TotalPages:  p.TotalPages,
		Window:      paging.Window(p.Current, p.TotalPages, paging.WithCenterBias(s.bias)),
		Saved:       s.store.Saved(),
		Filter:      s.filter,
	}
}

// Facets counts categories over what the screen may show, ignoring the
// current query and category.
func (s *Screen) Facets() []catalog.Facet {
	var items []catalog.Item
	for _, it := range s.store.List() {
		if s.base == nil || s.base(it) {
			items = append(items, it)
		}
	}
	return catalog.CountCategories(items)
}

func (s *Screen) Refresh() {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(s.View())
}

func (s *Screen) Events() Events {
	return Events{
		OnQueryChange:    s.SetQuery,
		OnCategoryChange: s.SetCategory,
		OnSortChange:     s.SetSort,
		OnPageChange:     s.GoTo,
		OnRate: func(id string, stars int) {
			if err := s.Rate(id, stars); err != nil {
				s.logger.Debug("rating ignored", "screen", s.name, "id", id, "error", err)
			}
		},
		OnToggleMembership: s.ToggleMembership,
	}
}
