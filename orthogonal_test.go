package weave

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestOrthogonalWeaveErrors(t *testing.T) {
	h, v := []string{"h1"}, []string{"v1"}
	var tts = []struct {
		hWidth, hSpacing, vWidth, vSpacing, margin float64
		hLabels, vLabels                           []string
	}{
		{0.0, 1.5, 1.0, 1.5, 0.0, h, v},
		{1.0, 1.5, -1.0, 1.5, 0.0, h, v},
		{1.0, 0.5, 1.0, 1.5, 0.0, h, v},  // horizontal spacing below width
		{1.0, 1.5, 1.0, 0.5, 0.0, h, v},  // vertical spacing below width
		{1.0, 1.5, 1.0, 1.5, -0.1, h, v}, // negative margin
		{1.0, 1.5, 1.0, 1.5, 0.5, h, v},  // margin at half the ribbon width
		{1.0, 1.5, 0.5, 1.5, 0.25, h, v}, // margin at half the smaller width
		{1.0, 1.5, 1.0, 1.5, 0.0, nil, v},
		{1.0, 1.5, 1.0, 1.5, 0.0, h, []string{}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := NewOrthogonalWeave(tt.hWidth, tt.hSpacing, tt.vWidth, tt.vSpacing, tt.margin, tt.hLabels, tt.vLabels)
			test.That(t, err != nil, "expected parameter error")
		})
	}
}

func TestOrthogonalWeave(t *testing.T) {
	w, err := NewOrthogonalWeave(1.0, 1.5, 1.0, 1.5, 0.05, []string{"h1"}, []string{"v1"})
	test.Error(t, err)

	cell := w.Cell()
	test.T(t, cell[0].Label, BoundingLabel)
	test.T(t, cell[0].Category, Bounding)

	// tile box (0,0)-(3,3): one vertical by one horizontal period
	bounds := w.TileBox().Bounds()
	test.Float(t, bounds.X0, 0.0)
	test.Float(t, bounds.Y0, 0.0)
	test.Float(t, bounds.X1, 3.0)
	test.Float(t, bounds.Y1, 3.0)

	// 4x4 grid including the buffer ring, alternating by parity
	shapes := cell.Shapes()
	test.T(t, len(shapes), 16)
	test.T(t, cell.Labels(), []string{"h1", "v1"})
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			fragment := shapes[r*4+c]
			bounds := fragment.Geometry.Bounds()
			if (r+c)%2 == 0 {
				// 2*sv-wv long, wh wide, inset by the margin on all sides
				test.T(t, fragment.Label, "h1")
				test.Float(t, bounds.X1-bounds.X0, 1.9)
				test.Float(t, bounds.Y1-bounds.Y0, 0.9)
			} else {
				test.T(t, fragment.Label, "v1")
				test.Float(t, bounds.X1-bounds.X0, 0.9)
				test.Float(t, bounds.Y1-bounds.Y0, 1.9)
			}
			test.Float(t, (bounds.X0+bounds.X1)/2.0, float64(c)*1.5)
			test.Float(t, (bounds.Y0+bounds.Y1)/2.0, float64(r)*1.5)
		}
	}

	// fragments are not clipped to the tile box: the buffer ring sticks out
	first := shapes[0].Geometry.Bounds()
	test.That(t, first.X0 < 0.0 && first.Y0 < 0.0)
	last := shapes[len(shapes)-1].Geometry.Bounds()
	test.That(t, 3.0 < last.X1 && 3.0 < last.Y1)
}

func TestOrthogonalWeaveLabelCycle(t *testing.T) {
	w, err := NewOrthogonalWeave(0.5, 1.0, 0.5, 1.0, 0.0, []string{"h1", "h2"}, []string{"v1", "v2", "v3"})
	test.Error(t, err)

	// m=2 horizontal rows and n=3 vertical columns
	cell := w.Cell()
	bounds := w.TileBox().Bounds()
	test.Float(t, bounds.X1, 6.0)
	test.Float(t, bounds.Y1, 4.0)

	shapes := cell.Shapes()
	rows, cols := 2*2+2, 2*3+2
	test.T(t, len(shapes), rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fragment := shapes[r*cols+c]
			if (r+c)%2 == 0 {
				test.T(t, fragment.Label, []string{"h1", "h2"}[r%2])
			} else {
				test.T(t, fragment.Label, []string{"v1", "v2", "v3"}[c%3])
			}
		}
	}
}
