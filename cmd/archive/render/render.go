package render

import (
	"archive/internal/catalog"
	"archive/internal/notify"
	"archive/internal/screen"
	"fmt"
	"io"
)

type Renderer interface {
	RenderView(view screen.View) string
	RenderFacets(facets []catalog.Facet) string
	RenderNotifications(items []notify.Notification) string
}

// Writer draws every view a screen refreshes onto W.
type Writer struct {
	W io.Writer
	R Renderer
}

var _ screen.Renderer = Writer{}

func (w Writer) Render(view screen.View) {
	fmt.Fprint(w.W, w.R.RenderView(view))
}
