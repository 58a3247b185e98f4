package weave

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"
)

// TriangularWeave generates the primitive cell of a triangular diamond weave:
// three ribbon families at 0, -120 and +120 degrees, clipped to a rhombic
// tile box. The cell is computed at construction and read-only afterwards.
type TriangularWeave struct {
	width   float64
	spacing float64
	margin  float64
	labels  [3]string
	cell    PrimitiveCell
}

// NewTriangularWeave validates the weave parameters and generates its
// primitive cell. Width is the ribbon width, spacing the distance between
// parallel ribbons (at least the width), and margin an inward inset applied
// to every ribbon fragment to create the visual over-under gap. The three
// labels identify the ribbon directions at 0, -120 and +120 degrees.
func NewTriangularWeave(width, spacing, margin float64, labels [3]string) (*TriangularWeave, error) {
	if width <= 0.0 {
		return nil, fmt.Errorf("width must be positive: %v", width)
	} else if spacing < width {
		return nil, fmt.Errorf("spacing must be at least the width: %v < %v", spacing, width)
	} else if margin < 0.0 {
		return nil, fmt.Errorf("margin must not be negative: %v", margin)
	}

	// The base parallelogram of exposed length L and width W collapses when
	// the inward offset reaches half its minimal height, sqrt(3)/4*min(W,L).
	length := spacing - width
	if limit := math.Sqrt(3.0) / 4.0 * math.Min(width, length); limit <= margin {
		return nil, fmt.Errorf("margin too large for ribbon geometry: %v >= %v", margin, limit)
	}

	w := &TriangularWeave{
		width:   width,
		spacing: spacing,
		margin:  margin,
		labels:  labels,
	}
	cell, err := w.generate()
	if err != nil {
		return nil, err
	}
	w.cell = cell
	return w, nil
}

// Cell returns the primitive cell: the rhombic tile box followed by every
// clipped ribbon fragment. The returned geometry must not be modified.
func (w *TriangularWeave) Cell() PrimitiveCell {
	return w.cell
}

// TileBox returns the rhombic bounding polygon defining one period of the
// pattern.
func (w *TriangularWeave) TileBox() *canvas.Path {
	return w.cell.Box()
}

func (w *TriangularWeave) generate() (PrimitiveCell, error) {
	sqrt3 := math.Sqrt(3.0)
	s, width, length := w.spacing, w.width, w.spacing-w.width

	// Periodicity vectors of the rhombic lattice; the tile box is the diamond
	// through these four points.
	shifts := [4]canvas.Point{
		{0.0, 0.0},
		{s / 2.0, -s * sqrt3 / 2.0},
		{s, 0.0},
		{s / 2.0, s * sqrt3 / 2.0},
	}
	box := polygon(shifts[0], shifts[1], shifts[2], shifts[3])

	// One exposed ribbon segment: a parallelogram with its base along the
	// x-axis and its short side at 120 degrees, inset by the margin.
	base := polygon(
		canvas.Point{0.0, 0.0},
		canvas.Point{length, 0.0},
		canvas.Point{length - width/2.0, width * sqrt3 / 2.0},
		canvas.Point{-width / 2.0, width * sqrt3 / 2.0},
	)
	if 0.0 < w.margin {
		base = base.Offset(-w.margin, canvas.NonZero)
		if base.Empty() {
			return nil, fmt.Errorf("margin collapses ribbon segment: %v", w.margin)
		}
	}

	// Three ribbon families, one rotation per label, each translated to every
	// lattice corner and clipped to the tile box. Touches that degenerate to
	// a point or line are discarded.
	rotations := [3]float64{0.0, -120.0, 120.0}
	fragments := []Fragment{}
	for i, rot := range rotations {
		family := base.Copy().Transform(canvas.Identity.Rotate(rot))
		for _, shift := range shifts {
			candidate := family.Copy().Translate(shift.X, shift.Y)
			clipped, kind := intersect(candidate, box)
			if kind == GeomPolygon || kind == GeomMultiPolygon {
				fragments = append(fragments, Fragment{
					Label:    w.labels[i],
					Category: Shape,
					Geometry: clipped,
				})
			}
		}
	}
	return assembleCell(box, fragments), nil
}
