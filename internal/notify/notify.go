package notify

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyInitialized = errors.New("notifications already initialized")

type Kind string

const (
	KindInfo   Kind = "info"
	KindReview Kind = "review"
	KindSystem Kind = "system"
)

type Notification struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Message   string    `yaml:"message"`
	Kind      Kind      `yaml:"kind"`
	CreatedAt time.Time `yaml:"created_at"`
	Read      bool      `yaml:"read"`
}

type Notifications interface {
	List() []Notification
	UnreadCount() int
	MarkAllRead()
	MarkRead(id string) bool
}

// Hub is the process-wide notification list. Every mutation swaps in a new
// slice and List hands out a copy, so callers never share the hub's state.
type Hub struct {
	mu          sync.RWMutex
	items       []Notification
	initialized bool
	now         func() time.Time
}

var _ Notifications = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{now: time.Now}
}

func (h *Hub) WithClock(now func() time.Time) *Hub {
	h.now = now
	return h
}

func (h *Hub) Init(seed []Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		return ErrAlreadyInitialized
	}
	h.items = slices.Clone(seed)
	h.initialized = true
	return nil
}

func (h *Hub) Teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = nil
	h.initialized = false
}

func (h *Hub) List() []Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.items)
}

func (h *Hub) UnreadCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, it := range h.items {
		if !it.Read {
			n++
		}
	}
	return n
}

func (h *Hub) MarkAllRead() {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]Notification, len(h.items))
	for i, it := range h.items {
		it.Read = true
		next[i] = it
	}
	h.items = next
}

func (h *Hub) MarkRead(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	next := slices.Clone(h.items)
	next[i].Read = true
	h.items = next
	return true
}

// Push prepends n, newest first, filling in a missing ID or timestamp.
func (h *Hub) Push(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Kind == "" {
		n.Kind = KindInfo
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = h.now()
	}
	next := make([]Notification, 0, len(h.items)+1)
	next = append(next, n)
	next = append(next, h.items...)
	h.items = next
	return n
}
