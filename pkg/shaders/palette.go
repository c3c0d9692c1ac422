package shaders

import (
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// Palette is a gradient with evenly spaced color stops.
type Palette []render.Color

// Hexes builds a palette from packed 0xRRGGBB values.
func Hexes(values ...uint32) Palette {
	p := make(Palette, len(values))
	for i, v := range values {
		p[i] = render.Hex(v)
	}
	return p
}

// At samples the gradient at t in [0, 1]; t outside the range is clamped.
// An empty palette is black.
func (p Palette) At(t float64) render.Color {
	switch len(p) {
	case 0:
		return render.Black
	case 1:
		return p[0]
	}
	if math.IsNaN(t) || t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}
	pos := t * float64(len(p)-1)
	i := int(pos)
	return p[i].Lerp(p[i+1], pos-float64(i))
}
