package shaders

import (
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// Debug patterns. They need no noise and make interpolation and depth
// problems easy to spot.

var stripeColors = [...]render.Color{
	render.RGB(255, 0, 0),
	render.RGB(0, 255, 0),
	render.RGB(0, 0, 255),
	render.RGB(255, 255, 0),
}

const stripeWidth = 20

// stripes colors horizontal screen-space bands.
func stripes(f *render.Fragment, _ *render.Uniforms, _ render.BlendMode) render.Color {
	return stripeColors[stripeIndex(f.Y)]
}

func stripeIndex(y int) int {
	i := (y / stripeWidth) % len(stripeColors)
	if i < 0 {
		i += len(stripeColors)
	}
	return i
}

// vertexBands darkens the screen stripes wherever the object-space height
// falls in the upper half of each 40-unit band.
func vertexBands(f *render.Fragment, _ *render.Uniforms, _ render.BlendMode) render.Color {
	c := stripeColors[stripeIndex(f.Y)]
	if band := math.Mod(math.Abs(f.Object.Y), 40); band > 20 {
		return c.Scale(0.8)
	}
	return c
}

// lerpStripes blends between neighboring stripe colors along object-space
// height, one stripe every 0.1 units, shaded by intensity.
func lerpStripes(f *render.Fragment, _ *render.Uniforms, _ render.BlendMode) render.Color {
	pos := math.Abs(f.Object.Y / 0.1)
	whole, frac := math.Modf(pos)
	i := int(math.Mod(whole, float64(len(stripeColors))))
	next := (i + 1) % len(stripeColors)
	return stripeColors[i].Lerp(stripeColors[next], frac).Scale(f.Intensity)
}

// trigWaves mixes red, green and blue with three interfering sine waves
// over object space.
func trigWaves(f *render.Fragment, _ *render.Uniforms, _ render.BlendMode) render.Color {
	const freq = 10.0
	x, y := f.Object.X, f.Object.Y
	wave1 := math.Sin(x*7*freq+y*5*freq)*0.5 + 0.5
	wave2 := math.Sin(x*5*freq-y*8*freq+math.Pi/3)*0.5 + 0.5
	wave3 := math.Sin(y*6*freq+x*4*freq+2*math.Pi/3)*0.5 + 0.5

	red, green, blue := stripeColors[0], stripeColors[1], stripeColors[2]
	c := red.Lerp(green, wave1)
	c = c.Lerp(blue, wave2)
	return c.Lerp(red, wave3)
}

// flat is the fragment color under Lambert lighting.
func flat(f *render.Fragment, u *render.Uniforms, _ render.BlendMode) render.Color {
	return f.Color.Scale(diffuse(f, u, 0.2))
}
