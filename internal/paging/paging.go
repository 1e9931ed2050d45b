// Package paging slices filtered collections into fixed-size pages and
// computes the page-number buttons shown under a grid or table.
package paging

import "strconv"

// Page sizes used by the screens.
const (
	GridSize    = 6
	TableSize   = 10
	RelatedSize = 5
)

const DefaultMaxVisible = 5

type Page[T any] struct {
	Items      []T
	Start      int
	End        int
	Current    int
	TotalPages int
}

func (p Page[T]) HasPrev() bool { return p.Current > 1 }
func (p Page[T]) HasNext() bool { return p.Current < p.TotalPages }

func TotalPages(n, size int) int {
	if size < 1 {
		size = 1
	}
	return max(1, (n+size-1)/size)
}

// Clamp forces page into [1, TotalPages(n, size)].
func Clamp(page, n, size int) int {
	return min(max(page, 1), TotalPages(n, size))
}

// Slice returns the window for page. Out-of-range pages are clamped so an
// overflowing request yields the last page instead of an empty window.
func Slice[T any](items []T, size, page int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := TotalPages(len(items), size)
	current := Clamp(page, len(items), size)

	start := min((current-1)*size, len(items))
	end := min(start+size, len(items))

	return Page[T]{
		Items:      items[start:end:end],
		Start:      start,
		End:        end,
		Current:    current,
		TotalPages: total,
	}
}

// Marker is either a page number or an ellipsis standing for skipped pages.
type Marker struct {
	Page     int
	Ellipsis bool
}

func (m Marker) String() string {
	if m.Ellipsis {
		return "…"
	}
	return strconv.Itoa(m.Page)
}

// CenterBias decides where the sliding window starts when the current page
// is away from both edges.
type CenterBias int

const (
	// CenterBiasLeft shows current-2 .. current+2.
	CenterBiasLeft CenterBias = iota
	// CenterBiasRight looks one page less behind current, so with five
	// visible buttons the window starts at current-1.
	CenterBiasRight
)

type windowConfig struct {
	maxVisible int
	bias       CenterBias
}

type WindowOption func(*windowConfig)

func WithMaxVisible(n int) WindowOption {
	return func(c *windowConfig) {
		if n > 0 {
			c.maxVisible = n
		}
	}
}

func WithCenterBias(b CenterBias) WindowOption {
	return func(c *windowConfig) {
		c.bias = b
	}
}

// Window lists the page buttons for current out of total. The first and
// last page are always present and every gap is marked with an ellipsis.
func Window(current, total int, opts ...WindowOption) []Marker {
	cfg := windowConfig{maxVisible: DefaultMaxVisible}
	for _, opt := range opts {
		opt(&cfg)
	}

	total = max(total, 1)
	current = min(max(current, 1), total)

	start, end := windowBounds(current, total, cfg)

	var markers []Marker
	if start > 1 {
		markers = append(markers, Marker{Page: 1})
		if start > 2 {
			markers = append(markers, Marker{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		markers = append(markers, Marker{Page: p})
	}
	if end < total {
		if end < total-1 {
			markers = append(markers, Marker{Ellipsis: true})
		}
		markers = append(markers, Marker{Page: total})
	}
	return markers
}

func windowBounds(current, total int, cfg windowConfig) (int, int) {
	n := cfg.maxVisible
	half := n / 2

	switch {
	case total <= n:
		return 1, total
	case current <= half+1:
		return 1, n
	case current >= total-half:
		return total - n + 1, total
	}

	start := current - half
	if cfg.bias == CenterBiasRight {
		start = current - max(half-1, 0)
	}
	end := start + n - 1
	if end > total {
		end = total
		start = end - n + 1
	}
	return start, end
}

func Labels(markers []Marker) []string {
	labels := make([]string, len(markers))
	for i, m := range markers {
		labels[i] = m.String()
	}
	return labels
}
