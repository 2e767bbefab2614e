package kmlstat

import "math"

// Kind is the geometry classification of an extracted element.
type Kind string

// Kind constants.
const (
	KindPoint           Kind = "Point"
	KindLineString      Kind = "LineString"
	KindPolygon         Kind = "Polygon"
	KindMultiLineString Kind = "MultiLineString"
)

// Kinds returns all kinds in display order.
func Kinds() []Kind {
	return []Kind{KindPoint, KindLineString, KindPolygon, KindMultiLineString}
}

// IsPath reports whether elements of this kind carry a length.
func (k Kind) IsPath() bool {
	return k == KindLineString || k == KindMultiLineString
}

// Coordinate is a longitude/latitude pair in decimal degrees.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// IsNaN reports whether either component failed to parse.
func (c Coordinate) IsNaN() bool {
	return math.IsNaN(c.Lon) || math.IsNaN(c.Lat)
}

// IsFinite reports whether both components are real numbers.
func (c Coordinate) IsFinite() bool {
	return !c.IsNaN() && !math.IsInf(c.Lon, 0) && !math.IsInf(c.Lat, 0)
}

// Element is a single geometry instance extracted from a placemark.
type Element struct {
	Kind        Kind         `json:"kind"`
	Coordinates []Coordinate `json:"coordinates"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`

	// Length is the geodesic length in kilometers.
	// Set only for LineString and MultiLineString elements.
	Length *float64 `json:"length,omitempty"`
}

// HasLength reports whether the element carries a derived length.
func (e *Element) HasLength() bool {
	return e.Length != nil
}

// Result is the output of a single extraction.
type Result struct {
	Elements []Element    `json:"elements"`
	Counts   map[Kind]int `json:"counts"`
}

// Total returns the number of extracted elements.
func (r *Result) Total() int {
	return len(r.Elements)
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLon float64 `json:"minLon"`
	MinLat float64 `json:"minLat"`
	MaxLon float64 `json:"maxLon"`
	MaxLat float64 `json:"maxLat"`
}

// EmptyBounds returns bounds that contain nothing and grow on Extend.
func EmptyBounds() Bounds {
	return Bounds{
		MinLon: math.Inf(1),
		MinLat: math.Inf(1),
		MaxLon: math.Inf(-1),
		MaxLat: math.Inf(-1),
	}
}

// Extend grows the bounds to include c. Coordinates with NaN or infinite
// components are ignored.
func (b *Bounds) Extend(c Coordinate) {
	if !c.IsFinite() {
		return
	}
	b.MinLon = math.Min(b.MinLon, c.Lon)
	b.MinLat = math.Min(b.MinLat, c.Lat)
	b.MaxLon = math.Max(b.MaxLon, c.Lon)
	b.MaxLat = math.Max(b.MaxLat, c.Lat)
}

// Valid reports whether the bounds describe a real, finite area or point.
func (b Bounds) Valid() bool {
	for _, v := range []float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.MinLon <= b.MaxLon && b.MinLat <= b.MaxLat
}

// Contains reports whether c lies within the bounds, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lon >= b.MinLon && c.Lon <= b.MaxLon &&
		c.Lat >= b.MinLat && c.Lat <= b.MaxLat
}

// Intersects reports whether the two boxes overlap, edges included.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLon <= o.MaxLon && o.MinLon <= b.MaxLon &&
		b.MinLat <= o.MaxLat && o.MinLat <= b.MaxLat
}

// BoundsOf returns the box enclosing every coordinate of every element.
func BoundsOf(elements []Element) Bounds {
	b := EmptyBounds()
	for _, e := range elements {
		for _, c := range e.Coordinates {
			b.Extend(c)
		}
	}
	return b
}
