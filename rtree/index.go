// Package rtree provides a spatial index over extracted elements.
package rtree

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/fwojciec/kmlstat"
)

// minExtent pads degenerate boxes; rtreego rejects zero-length sides.
const minExtent = 1e-9

// Index answers bounding-box queries over a set of elements.
//
// Elements whose coordinates are all NaN have no bounds and are not indexed.
type Index struct {
	elements []kmlstat.Element
	tree     *rtreego.Rtree
}

// entry adapts an element position to rtreego.Spatial.
type entry struct {
	pos    int
	bounds kmlstat.Bounds
}

// Bounds implements rtreego.Spatial.
func (e entry) Bounds() rtreego.Rect {
	return rect(e.bounds)
}

// NewIndex builds an index over elements.
func NewIndex(elements []kmlstat.Element) *Index {
	// 2D, min=25 children, max=50 children
	tree := rtreego.NewTree(2, 25, 50)

	for i, e := range elements {
		b := kmlstat.BoundsOf([]kmlstat.Element{e})
		if !b.Valid() {
			continue
		}
		tree.Insert(entry{pos: i, bounds: b})
	}

	return &Index{elements: elements, tree: tree}
}

// Len returns the number of indexed elements.
func (idx *Index) Len() int {
	return idx.tree.Size()
}

// Search returns the elements whose bounds intersect b, edges included,
// in their original order. Invalid bounds match nothing.
func (idx *Index) Search(b kmlstat.Bounds) []kmlstat.Element {
	if !b.Valid() {
		return nil
	}

	var positions []int
	// rtreego treats touching boxes as disjoint, so widen the query and
	// apply the inclusive check afterwards.
	query := kmlstat.Bounds{
		MinLon: b.MinLon - minExtent,
		MinLat: b.MinLat - minExtent,
		MaxLon: b.MaxLon + minExtent,
		MaxLat: b.MaxLat + minExtent,
	}
	for _, s := range idx.tree.SearchIntersect(rect(query)) {
		e := s.(entry)
		if !e.bounds.Intersects(b) {
			continue
		}
		positions = append(positions, e.pos)
	}
	sort.Ints(positions)

	result := make([]kmlstat.Element, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.elements[pos])
	}
	return result
}

func rect(b kmlstat.Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		max(b.MaxLon-b.MinLon, minExtent),
		max(b.MaxLat-b.MinLat, minExtent),
	}
	r, _ := rtreego.NewRect(point, lengths)
	return r
}
