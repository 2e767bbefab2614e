package mock

import (
	"io"

	"github.com/fwojciec/kmlstat"
)

var _ kmlstat.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of kmlstat.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, shapes []kmlstat.Shape, bounds kmlstat.Bounds) error
}

func (r *Renderer) Render(w io.Writer, shapes []kmlstat.Shape, bounds kmlstat.Bounds) error {
	return r.RenderFn(w, shapes, bounds)
}
