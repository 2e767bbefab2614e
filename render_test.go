package kmlstat_test

import (
	"testing"

	"github.com/fwojciec/kmlstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFor(t *testing.T) {
	t.Parallel()

	coords := []kmlstat.Coordinate{{Lon: 1, Lat: 2}, {Lon: 3, Lat: 4}}

	tests := []struct {
		name   string
		kind   kmlstat.Kind
		shape  kmlstat.ShapeKind
		points int
		color  string
	}{
		{name: "point is a marker at its first coordinate", kind: kmlstat.KindPoint, shape: kmlstat.ShapeMarker, points: 1},
		{name: "line string is a blue path", kind: kmlstat.KindLineString, shape: kmlstat.ShapePath, points: 2, color: kmlstat.PathColor},
		{name: "multi line string is a blue path", kind: kmlstat.KindMultiLineString, shape: kmlstat.ShapePath, points: 2, color: kmlstat.PathColor},
		{name: "polygon is a green ring", kind: kmlstat.KindPolygon, shape: kmlstat.ShapeRing, points: 2, color: kmlstat.RingColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shape, ok := kmlstat.ShapeFor(&kmlstat.Element{Kind: tt.kind, Coordinates: coords, Name: "x"})

			require.True(t, ok)
			assert.Equal(t, tt.shape, shape.Kind)
			assert.Len(t, shape.Points, tt.points)
			assert.Equal(t, tt.color, shape.Color)
			assert.Equal(t, "x", shape.Popup.Title)
		})
	}

	t.Run("skips elements without coordinates", func(t *testing.T) {
		t.Parallel()

		_, ok := kmlstat.ShapeFor(&kmlstat.Element{Kind: kmlstat.KindPoint})

		assert.False(t, ok)
	})
}

func TestShapes(t *testing.T) {
	t.Parallel()

	shapes := kmlstat.Shapes([]kmlstat.Element{
		{Kind: kmlstat.KindPoint, Coordinates: []kmlstat.Coordinate{{Lon: 1, Lat: 1}}},
		{Kind: kmlstat.KindPoint},
		{Kind: kmlstat.KindPolygon, Coordinates: []kmlstat.Coordinate{{Lon: 1, Lat: 1}}},
	})

	require.Len(t, shapes, 2)
	assert.Equal(t, "marker", shapes[0].Kind.String())
	assert.Equal(t, "ring", shapes[1].Kind.String())
}
