package kmlstat

import "io"

// ShapeKind is the drawing primitive used to render an element.
type ShapeKind int

// ShapeKind constants.
const (
	ShapeMarker ShapeKind = iota
	ShapePath
	ShapeRing
)

// String returns the lowercase name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeMarker:
		return "marker"
	case ShapePath:
		return "path"
	case ShapeRing:
		return "ring"
	}
	return "unknown"
}

// Shape colors.
const (
	PathColor = "blue"
	RingColor = "green"
)

// Shape is a renderer-agnostic drawing of one element.
type Shape struct {
	Kind   ShapeKind
	Points []Coordinate
	Color  string
	Popup  Popup
}

// ShapeFor returns the shape for e. Points render as a marker at their
// first coordinate, paths as blue lines and polygons as green rings.
// Returns false for elements without coordinates.
func ShapeFor(e *Element) (Shape, bool) {
	if len(e.Coordinates) == 0 {
		return Shape{}, false
	}
	s := Shape{Popup: PopupFor(e)}
	switch e.Kind {
	case KindPoint:
		s.Kind = ShapeMarker
		s.Points = e.Coordinates[:1]
	case KindLineString, KindMultiLineString:
		s.Kind = ShapePath
		s.Points = e.Coordinates
		s.Color = PathColor
	case KindPolygon:
		s.Kind = ShapeRing
		s.Points = e.Coordinates
		s.Color = RingColor
	default:
		return Shape{}, false
	}
	return s, true
}

// Shapes returns the shapes for all drawable elements in order.
func Shapes(elements []Element) []Shape {
	shapes := make([]Shape, 0, len(elements))
	for i := range elements {
		if s, ok := ShapeFor(&elements[i]); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// Renderer draws shapes onto an output medium.
type Renderer interface {
	// Render writes the shapes to w, framing the view on bounds when
	// bounds is valid.
	Render(w io.Writer, shapes []Shape, bounds Bounds) error
}
