package render

import (
	"image"
	"math"
)

// FarDepth is the depth a cleared pixel holds: farther than any fragment.
const FarDepth = math.MaxFloat64

// Framebuffer owns a packed 0xRRGGBB color buffer and a per-pixel depth
// buffer of the same size. Commit is the only way fragments reach it, and
// it keeps the nearest fragment per pixel regardless of submission order.
type Framebuffer struct {
	Width  int
	Height int

	pixels     []uint32  // Row-major 0xRRGGBB
	depth      []float64 // Row-major, smaller is nearer
	background Color
	current    Color
}

// NewFramebuffer allocates a framebuffer and clears it to black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates both buffers for a new size and clears them.
// Negative sizes are treated as zero.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	fb.Width = width
	fb.Height = height
	fb.pixels = make([]uint32, width*height)
	fb.depth = make([]float64, width*height)
	fb.Clear()
}

// SetBackground sets the color Clear fills the color buffer with.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Background returns the clear color.
func (fb *Framebuffer) Background() Color {
	return fb.background
}

// SetCurrentColor sets the draw color register used by Point.
func (fb *Framebuffer) SetCurrentColor(c Color) {
	fb.current = c
}

// CurrentColor returns the draw color register.
func (fb *Framebuffer) CurrentColor() Color {
	return fb.current
}

// Clear resets every pixel to the background color and every depth to
// FarDepth. Call it before the first Commit of each frame.
func (fb *Framebuffer) Clear() {
	fill(fb.pixels, fb.background.Hex())
	fill(fb.depth, FarDepth)
}

// fill sets every element of s to v using copy-doubling.
func fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// Commit writes c at (x, y) if depth is nearer than what the pixel holds.
// Out-of-bounds coordinates are ignored. It reports whether the pixel was
// written.
func (fb *Framebuffer) Commit(x, y int, depth float64, c Color) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if !(depth < fb.depth[i]) {
		return false
	}
	fb.depth[i] = depth
	fb.pixels[i] = c.Hex()
	return true
}

// Point commits the current draw color at (x, y).
func (fb *Framebuffer) Point(x, y int, depth float64) bool {
	return fb.Commit(x, y, depth, fb.current)
}

// Pixel returns the color at (x, y), or black if out of bounds.
func (fb *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Black
	}
	return Hex(fb.pixels[y*fb.Width+x])
}

// Depth returns the stored depth at (x, y), or FarDepth if out of bounds.
func (fb *Framebuffer) Depth(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return FarDepth
	}
	return fb.depth[y*fb.Width+x]
}

// Buffer returns the raw row-major 0xRRGGBB color buffer. The slice is
// owned by the framebuffer and is overwritten by the next frame.
func (fb *Framebuffer) Buffer() []uint32 {
	return fb.pixels
}

// WriteRGBA fills dst with 8-bit RGBA pixels (alpha 255). dst must hold at
// least Width*Height*4 bytes; extra pixels are left untouched.
func (fb *Framebuffer) WriteRGBA(dst []byte) {
	n := min(len(fb.pixels), len(dst)/4)
	for i, p := range fb.pixels[:n] {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.WriteRGBA(img.Pix)
	return img
}
