package render

import (
	"image/color"
	"math"
)

// Color is an opaque 8-bit-per-channel RGB value. Every arithmetic
// operator saturates each channel to [0, 255]; nothing wraps.
type Color struct {
	R, G, B uint8
}

// Named colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB creates a color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Hex decodes a packed 0xRRGGBB value. Bits above 24 are ignored.
func Hex(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Hex packs the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA returns the opaque color.RGBA equivalent.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// IsZero reports whether all three channels are exactly zero. Masking
// shaders treat pure black as "nothing drawn here".
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * s),
		G: clampChannel(float64(c.G) * s),
		B: clampChannel(float64(c.B) * s),
	}
}

// Add returns the saturating per-channel sum.
func (c Color) Add(o Color) Color {
	return Color{
		R: uint8(min(int(c.R)+int(o.R), 255)),
		G: uint8(min(int(c.G)+int(o.G), 255)),
		B: uint8(min(int(c.B)+int(o.B), 255)),
	}
}

// Sub returns the saturating per-channel difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{
		R: uint8(max(int(c.R)-int(o.R), 0)),
		G: uint8(max(int(c.G)-int(o.G), 0)),
		B: uint8(max(int(c.B)-int(o.B), 0)),
	}
}

// Lerp interpolates from c (t=0) to o (t=1). t is not clamped, so callers
// may extrapolate; the channels still saturate.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: clampChannel(lerp(float64(c.R), float64(o.R), t)),
		G: clampChannel(lerp(float64(c.G), float64(o.G), t)),
		B: clampChannel(lerp(float64(c.B), float64(o.B), t)),
	}
}

// interpolateColor3 combines three colors with barycentric weights.
func interpolateColor3(c0, c1, c2 Color, w0, w1, w2 float64) Color {
	return Color{
		R: clampChannel(float64(c0.R)*w0 + float64(c1.R)*w1 + float64(c2.R)*w2),
		G: clampChannel(float64(c0.G)*w0 + float64(c1.G)*w1 + float64(c2.G)*w2),
		B: clampChannel(float64(c0.B)*w0 + float64(c1.B)*w1 + float64(c2.B)*w2),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clampChannel rounds v to the nearest integer in [0, 255]. NaN maps to 0.
func clampChannel(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(math.Round(v))
	default:
		return 0
	}
}
