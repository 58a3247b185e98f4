// Package weave generates tileable two-dimensional weave patterns: labeled
// polygons that exactly fill a periodic unit cell and can be repeated across
// the plane to render over-under ribbon patterns, for example as symbology
// layers on top of choropleth maps.
//
// Two weave topologies are supported: a triangular (hexagonal-axis) diamond
// weave of three ribbon directions, and an orthogonal weave of horizontal and
// vertical ribbons. A generator is constructed once from its parameters and
// computes its primitive cell eagerly; Tessellate repeats a primitive cell
// over a target rectangle and merges fragments per label. All coordinates are
// abstract planar units, no coordinate reference system is assumed.
package weave

import (
	"math"

	"github.com/tdewolff/canvas"
)

// BoundingLabel is the label of the bounding polygon in a primitive cell.
const BoundingLabel = "bb"

// degenerateArea is the area below which an intersection result is considered
// lower-dimensional (a point or line touch instead of a proper polygon).
const degenerateArea = 1e-9

// Category distinguishes the bounding polygon of a primitive cell from the
// ribbon fragments it contains.
type Category int

const (
	Bounding Category = iota
	Shape
)

func (category Category) String() string {
	if category == Bounding {
		return "bounding"
	}
	return "shape"
}

// Fragment is a single labeled polygon of a primitive cell. Fragments are
// immutable once produced; transforms yield new fragments and never modify
// the geometry in place.
type Fragment struct {
	Label    string
	Category Category
	Geometry *canvas.Path
}

// translate returns a copy of the fragment moved by (x,y). The original
// geometry is left untouched.
func (fragment Fragment) translate(x, y float64) Fragment {
	return Fragment{
		Label:    fragment.Label,
		Category: fragment.Category,
		Geometry: fragment.Geometry.Copy().Translate(x, y),
	}
}

// PrimitiveCell is the ordered labeled polygon collection whose periodic
// repetition reconstructs the full weave pattern. The first element is the
// bounding polygon (the tile box), all following elements are ribbon
// fragments in generation order.
type PrimitiveCell []Fragment

// Box returns the tile box polygon defining one period of the pattern.
func (cell PrimitiveCell) Box() *canvas.Path {
	return cell[0].Geometry
}

// Shapes returns the ribbon fragments of the cell, without the bounding
// polygon.
func (cell PrimitiveCell) Shapes() []Fragment {
	return cell[1:]
}

// Labels returns the distinct ribbon labels of the cell in order of first
// appearance.
func (cell PrimitiveCell) Labels() []string {
	labels := []string{}
	seen := map[string]bool{}
	for _, fragment := range cell.Shapes() {
		if !seen[fragment.Label] {
			seen[fragment.Label] = true
			labels = append(labels, fragment.Label)
		}
	}
	return labels
}

// assembleCell packages a tile box and its ribbon fragments into a primitive
// cell. The box and fragments are passed explicitly, the assembler reads no
// generator state.
func assembleCell(box *canvas.Path, fragments []Fragment) PrimitiveCell {
	cell := make(PrimitiveCell, 0, len(fragments)+1)
	cell = append(cell, Fragment{Label: BoundingLabel, Category: Bounding, Geometry: box})
	return append(cell, fragments...)
}

// GeomKind tags the dimensionality of a boolean operation result.
type GeomKind int

const (
	GeomEmpty GeomKind = iota
	GeomPoint
	GeomLine
	GeomPolygon
	GeomMultiPolygon
)

func (kind GeomKind) String() string {
	switch kind {
	case GeomEmpty:
		return "empty"
	case GeomPoint:
		return "point"
	case GeomLine:
		return "line"
	case GeomPolygon:
		return "polygon"
	}
	return "multipolygon"
}

// geomKind classifies a path as empty, a point, a line, or an area-bearing
// (multi)polygon.
func geomKind(p *canvas.Path) GeomKind {
	if p.Empty() {
		return GeomEmpty
	}
	bounds := p.Bounds()
	if bounds.X1-bounds.X0 < degenerateArea && bounds.Y1-bounds.Y0 < degenerateArea {
		return GeomPoint
	} else if math.Abs(p.Area()) < degenerateArea {
		return GeomLine
	} else if 1 < len(p.Split()) {
		return GeomMultiPolygon
	}
	return GeomPolygon
}

// intersect computes the intersection of two polygons together with the kind
// of the result, so that callers can keep area-bearing results and discard
// point or line touches explicitly.
func intersect(p, q *canvas.Path) (*canvas.Path, GeomKind) {
	r := p.And(q)
	return r, geomKind(r)
}

// polygon builds a closed path through the given vertices in order.
func polygon(points ...canvas.Point) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(points[0].X, points[0].Y)
	for _, point := range points[1:] {
		p.LineTo(point.X, point.Y)
	}
	p.Close()
	return p
}
