package kmlstat

import "strings"

// KML vocabulary recognized by Walk.
const (
	tagPlacemark       = "Placemark"
	tagName            = "name"
	tagDescription     = "description"
	tagCoordinates     = "coordinates"
	tagPoint           = "Point"
	tagLineString      = "LineString"
	tagPolygon         = "Polygon"
	tagOuterBoundaryIs = "outerBoundaryIs"
	tagLinearRing      = "LinearRing"
	tagMultiGeometry   = "MultiGeometry"
)

// Walk visits every placemark under root in document order, classifies its
// geometry and returns the extracted elements with per-kind record counts.
//
// Counts are per placemark: a kind is counted once when the placemark
// carries that geometry, whether or not an element could be built from it.
// MultiLineString is counted once per placemark, not once per line.
func Walk(root Node) *Result {
	r := &Result{Counts: make(map[Kind]int)}
	for _, pm := range AllNamed(root, tagPlacemark) {
		walkPlacemark(r, pm)
	}
	return r
}

func walkPlacemark(r *Result, pm Node) {
	name := childText(pm, tagName)
	description := childText(pm, tagDescription)

	add := func(kind Kind, text string) {
		coords := ParseCoordinates(text)
		e := Element{
			Kind:        kind,
			Coordinates: coords,
			Name:        name,
			Description: description,
		}
		if kind.IsPath() {
			length := PathLength(coords)
			e.Length = &length
		}
		r.Elements = append(r.Elements, e)
	}

	if point := FirstNamed(pm, tagPoint); point != nil {
		r.Counts[KindPoint]++
		if text, ok := coordinateText(point); ok {
			add(KindPoint, text)
		}
	}

	if line := FirstNamedOutside(pm, tagLineString, tagMultiGeometry); line != nil {
		r.Counts[KindLineString]++
		if text, ok := coordinateText(line); ok {
			add(KindLineString, text)
		}
	}

	if polygon := FirstNamed(pm, tagPolygon); polygon != nil {
		r.Counts[KindPolygon]++
		if ring := outerRing(polygon); ring != nil {
			if text, ok := coordinateText(ring); ok {
				add(KindPolygon, text)
			}
		}
	}

	if multi := FirstNamed(pm, tagMultiGeometry); multi != nil {
		lines := AllNamed(multi, tagLineString)
		if len(lines) > 0 {
			r.Counts[KindMultiLineString]++
		}
		for _, line := range lines {
			if text, ok := coordinateText(line); ok {
				add(KindMultiLineString, text)
			}
		}
	}
}

// outerRing returns the polygon's outer boundary ring, falling back to the
// first ring anywhere in the polygon.
func outerRing(polygon Node) Node {
	if outer := FirstNamed(polygon, tagOuterBoundaryIs); outer != nil {
		if ring := FirstNamed(outer, tagLinearRing); ring != nil {
			return ring
		}
	}
	return FirstNamed(polygon, tagLinearRing)
}

// coordinateText returns the text of the geometry's coordinates element.
// Whitespace-only text is treated as missing.
func coordinateText(geometry Node) (string, bool) {
	text := childText(geometry, tagCoordinates)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// childText returns the text of the first descendant with the given tag,
// or "" when there is none.
func childText(n Node, tag string) string {
	c := FirstNamed(n, tag)
	if c == nil {
		return ""
	}
	return c.Text()
}
