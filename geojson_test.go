package weave

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestPrimitiveCellGeoJSON(t *testing.T) {
	w, err := NewOrthogonalWeave(1.0, 1.5, 1.0, 1.5, 0.05, []string{"h1"}, []string{"v1"})
	test.Error(t, err)

	cell := w.Cell()
	collection := cell.GeoJSON()
	test.T(t, len(collection.Features), len(cell))
	test.T(t, collection.Features[0].Properties["label"], BoundingLabel)
	test.T(t, collection.Features[0].Properties["category"], "bounding")
	test.T(t, collection.Features[1].Properties["label"], "h1")
	test.T(t, collection.Features[1].Properties["category"], "shape")

	// rings are closed and areas match the source geometry
	for i, feature := range collection.Features {
		p, ok := feature.Geometry.(orb.Polygon)
		test.That(t, ok, "feature", i)
		ring := p[0]
		test.T(t, ring[0], ring[len(ring)-1])
		test.That(t, math.Abs(math.Abs(planar.Area(p))-math.Abs(cell[i].Geometry.Area())) < 1e-9)
	}

	data, err := json.Marshal(collection)
	test.Error(t, err)
	test.That(t, strings.Contains(string(data), `"FeatureCollection"`))
	test.That(t, strings.Contains(string(data), `"label"`))
}

func TestTessellationGeoJSON(t *testing.T) {
	w, err := NewOrthogonalWeave(1.0, 1.5, 1.0, 1.5, 0.05, []string{"h1"}, []string{"v1"})
	test.Error(t, err)

	tessellation, err := Tessellate(w.Cell(), canvas.Rect{X0: 0.0, Y0: 0.0, X1: 6.0, Y1: 6.0})
	test.Error(t, err)

	collection := tessellation.GeoJSON()
	test.T(t, len(collection.Features), 2)
	test.T(t, collection.Features[0].Properties["label"], "h1")
	test.T(t, collection.Features[1].Properties["label"], "v1")

	// merged ribbons are multi-part geometries
	for i, feature := range collection.Features {
		_, ok := feature.Geometry.(orb.MultiPolygon)
		test.That(t, ok, "feature", i)
	}
}

func TestPathGeometryHoles(t *testing.T) {
	// a square with a hole maps to an exterior ring plus an interior ring
	outer := polygon(canvas.Point{0.0, 0.0}, canvas.Point{4.0, 0.0}, canvas.Point{4.0, 4.0}, canvas.Point{0.0, 4.0})
	hole := polygon(canvas.Point{1.0, 1.0}, canvas.Point{1.0, 3.0}, canvas.Point{3.0, 3.0}, canvas.Point{3.0, 1.0}) // clockwise
	p := outer.Copy().Append(hole)

	g, ok := pathGeometry(p).(orb.Polygon)
	test.That(t, ok)
	test.T(t, len(g), 2)
	test.That(t, math.Abs(planar.Area(g)-12.0) < 1e-9)
}
