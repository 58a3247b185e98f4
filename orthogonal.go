package weave

import (
	"fmt"

	"github.com/tdewolff/canvas"
)

// OrthogonalWeave generates the primitive cell of an orthogonal weave:
// alternating horizontal and vertical ribbon segments on a rectangular tile
// box. The cell is computed at construction and read-only afterwards.
//
// Unlike the triangular weave, fragments are not clipped to the tile box: the
// generated grid carries one extra ring of segments around the box so that
// tessellation can merge complete ribbon segments across tile boundaries.
type OrthogonalWeave struct {
	hWidth, hSpacing float64
	vWidth, vSpacing float64
	margin           float64
	hLabels, vLabels []string
	cell             PrimitiveCell
}

// NewOrthogonalWeave validates the weave parameters and generates its
// primitive cell. Horizontal ribbons have width hWidth and repeat every
// hSpacing vertically; vertical ribbons have width vWidth and repeat every
// vSpacing horizontally. Margin insets every segment on all sides. The label
// lists cycle over the horizontal rows and vertical columns; their lengths
// determine the row and column count of the tile box.
func NewOrthogonalWeave(hWidth, hSpacing, vWidth, vSpacing, margin float64, hLabels, vLabels []string) (*OrthogonalWeave, error) {
	if hWidth <= 0.0 || vWidth <= 0.0 {
		return nil, fmt.Errorf("ribbon widths must be positive: %v, %v", hWidth, vWidth)
	} else if hSpacing < hWidth {
		return nil, fmt.Errorf("horizontal spacing must be at least the ribbon width: %v < %v", hSpacing, hWidth)
	} else if vSpacing < vWidth {
		return nil, fmt.Errorf("vertical spacing must be at least the ribbon width: %v < %v", vSpacing, vWidth)
	} else if margin < 0.0 {
		return nil, fmt.Errorf("margin must not be negative: %v", margin)
	} else if limit := min(hWidth, vWidth) / 2.0; limit <= margin {
		return nil, fmt.Errorf("margin too large for ribbon geometry: %v >= %v", margin, limit)
	} else if len(hLabels) == 0 || len(vLabels) == 0 {
		return nil, fmt.Errorf("label lists must not be empty")
	}

	w := &OrthogonalWeave{
		hWidth:   hWidth,
		hSpacing: hSpacing,
		vWidth:   vWidth,
		vSpacing: vSpacing,
		margin:   margin,
		hLabels:  hLabels,
		vLabels:  vLabels,
	}
	w.cell = w.generate()
	return w, nil
}

// Cell returns the primitive cell: the rectangular tile box followed by every
// ribbon segment of the buffered grid. The returned geometry must not be
// modified.
func (w *OrthogonalWeave) Cell() PrimitiveCell {
	return w.cell
}

// TileBox returns the axis-aligned bounding rectangle defining one period of
// the pattern.
func (w *OrthogonalWeave) TileBox() *canvas.Path {
	return w.cell.Box()
}

// rect builds a closed axis-aligned rectangle centered at the origin with the
// given full width and height, inset by the margin on all sides.
func (w *OrthogonalWeave) rect(width, height float64) *canvas.Path {
	x, y := width/2.0-w.margin, height/2.0-w.margin
	return polygon(
		canvas.Point{-x, -y},
		canvas.Point{x, -y},
		canvas.Point{x, y},
		canvas.Point{-x, y},
	)
}

func (w *OrthogonalWeave) generate() PrimitiveCell {
	m, n := len(w.hLabels), len(w.vLabels)

	// Segment lengths span across the orthogonal spacing period so that
	// consecutive same-direction segments leave exactly one ribbon width for
	// the crossing ribbon.
	hLength := 2.0*w.vSpacing - w.vWidth
	vLength := 2.0*w.hSpacing - w.hWidth
	hBase := w.rect(hLength, w.hWidth)
	vBase := w.rect(w.vWidth, vLength)

	// The grid is one ring larger than the m x n tile box on every side so
	// that edge ribbons of the visible tile are complete.
	fragments := []Fragment{}
	for r := 0; r < 2*m+2; r++ {
		for c := 0; c < 2*n+2; c++ {
			x, y := float64(c)*w.vSpacing, float64(r)*w.hSpacing
			var fragment Fragment
			if (r+c)%2 == 0 {
				fragment = Fragment{Label: w.hLabels[r%m], Category: Shape, Geometry: hBase.Copy().Translate(x, y)}
			} else {
				fragment = Fragment{Label: w.vLabels[c%n], Category: Shape, Geometry: vBase.Copy().Translate(x, y)}
			}
			fragments = append(fragments, fragment)
		}
	}

	box := polygon(
		canvas.Point{0.0, 0.0},
		canvas.Point{2.0 * float64(n) * w.vSpacing, 0.0},
		canvas.Point{2.0 * float64(n) * w.vSpacing, 2.0 * float64(m) * w.hSpacing},
		canvas.Point{0.0, 2.0 * float64(m) * w.hSpacing},
	)
	return assembleCell(box, fragments)
}
