package rating

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("stars out of range")

const (
	MinStars = 1
	MaxStars = 5
)

type State int

const (
	Idle State = iota
	Hovering
	Committed
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Committed:
		return "committed"
	default:
		return "idle"
	}
}

// RateFunc receives committed ratings. What happens to them (aggregation,
// persistence) is up to the caller.
type RateFunc func(id string, stars int)

// Widget tracks the star widget of one displayed item.
type Widget struct {
	id        string
	state     State
	hover     int
	committed int
	onRate    RateFunc
}

func NewWidget(id string, onRate RateFunc) *Widget {
	return &Widget{id: id, onRate: onRate}
}

func (w *Widget) ID() string   { return w.id }
func (w *Widget) State() State { return w.state }

// Committed returns the last committed value, 0 if none.
func (w *Widget) Committed() int { return w.committed }

// Hover previews n stars. Values outside the star range are ignored.
func (w *Widget) Hover(n int) bool {
	if !valid(n) {
		return false
	}
	w.hover = n
	w.state = Hovering
	return true
}

func (w *Widget) Clear() {
	w.hover = 0
	if w.committed > 0 {
		w.state = Committed
	} else {
		w.state = Idle
	}
}

func (w *Widget) Commit(n int) error {
	if !valid(n) {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, n, MinStars, MaxStars)
	}
	w.committed = n
	w.hover = 0
	w.state = Committed
	if w.onRate != nil {
		w.onRate(w.id, n)
	}
	return nil
}

// Display is the number of filled stars to draw.
func (w *Widget) Display() int {
	if w.state == Hovering {
		return w.hover
	}
	return w.committed
}

func valid(n int) bool {
	return n >= MinStars && n <= MaxStars
}
