package weave

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"
)

// Ribbon is one visually continuous strip of a tessellated weave: the merged
// geometry of every fragment sharing a label, possibly multi-part.
type Ribbon struct {
	Label    string
	Geometry *canvas.Path
}

// Tessellation is the result of repeating a primitive cell over a target
// rectangle, one merged ribbon per distinct label in the cell.
type Tessellation []Ribbon

// Tessellate repeats the primitive cell over the target rectangle and merges
// all fragments per label into one geometry. The repeated block uses as many
// whole tiles per axis as needed to cover the rectangle (at least one) and is
// centered on it. Ribbons are returned in order of first label appearance in
// the cell.
func Tessellate(cell PrimitiveCell, rect canvas.Rect) (Tessellation, error) {
	if rect.X1-rect.X0 <= 0.0 || rect.Y1-rect.Y0 <= 0.0 {
		return nil, fmt.Errorf("target rectangle must have positive area: %v", rect)
	}

	bounds := cell.Box().Bounds()
	tileW := bounds.X1 - bounds.X0
	tileH := bounds.Y1 - bounds.Y0
	nx := int(math.Ceil((rect.X1 - rect.X0) / tileW))
	ny := int(math.Ceil((rect.Y1 - rect.Y0) / tileH))

	// Center the whole tiled block on the target rectangle.
	x0 := rect.X0 + ((rect.X1-rect.X0)-float64(nx)*tileW)/2.0 - bounds.X0
	y0 := rect.Y0 + ((rect.Y1-rect.Y0)-float64(ny)*tileH)/2.0 - bounds.Y0

	// Accumulate the translated fragments of every tile per label, then
	// settle each accumulation into one merged geometry. Settling also
	// removes the duplicate buffer segments that neighboring tiles share.
	merged := map[string]*canvas.Path{}
	labels := []string{}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			dx, dy := x0+float64(x)*tileW, y0+float64(y)*tileH
			for _, fragment := range cell.Shapes() {
				shifted := fragment.translate(dx, dy)
				if p, ok := merged[fragment.Label]; ok {
					merged[fragment.Label] = p.Append(shifted.Geometry)
				} else {
					merged[fragment.Label] = shifted.Geometry
					labels = append(labels, fragment.Label)
				}
			}
		}
	}

	tessellation := make(Tessellation, 0, len(labels))
	for _, label := range labels {
		tessellation = append(tessellation, Ribbon{
			Label:    label,
			Geometry: merged[label].Settle(canvas.NonZero),
		})
	}
	return tessellation, nil
}
