package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Guides draws depth-tested debug lines over a frame. Endpoints go through
// the same MVP and viewport as triangles, and every pixel is written with
// Commit, so solid geometry in front hides the guide.
type Guides struct {
	fb *Framebuffer
	u  *Uniforms
}

// NewGuides creates a guide drawer for one framebuffer and uniform set.
// The uniforms are read at draw time, so model changes apply immediately.
func NewGuides(fb *Framebuffer, u *Uniforms) *Guides {
	return &Guides{fb: fb, u: u}
}

// Line draws a model-space segment. Segments with either end behind the
// camera are skipped.
func (g *Guides) Line(a, b math3d.Vec3, c Color) {
	mvp := g.u.MVP()
	ca := mvp.MulVec4(math3d.V4FromV3(a, 1))
	cb := mvp.MulVec4(math3d.V4FromV3(b, 1))
	if ca.W <= 0 || cb.W <= 0 {
		return
	}
	pa := g.u.Viewport.MulVec3(ca.PerspectiveDivide())
	pb := g.u.Viewport.MulVec3(cb.PerspectiveDivide())
	g.line2D(pa, pb, c)
}

// line2D walks the segment one pixel per step along its major axis,
// interpolating depth linearly in screen space.
func (g *Guides) line2D(a, b math3d.Vec3, c Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		g.fb.Commit(int(math.Round(a.X)), int(math.Round(a.Y)), a.Z, c)
		return
	}
	// Cap the walk so a near-degenerate projection cannot stall a frame.
	steps = min(steps, 4*(g.fb.Width+g.fb.Height))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Lerp(b, t)
		g.fb.Commit(int(math.Round(p.X)), int(math.Round(p.Y)), p.Z, c)
	}
}

// Axes draws the X, Y and Z axes from the model origin in red, green and
// blue.
func (g *Guides) Axes(length float64) {
	o := math3d.Zero3()
	g.Line(o, math3d.V3(length, 0, 0), RGB(255, 0, 0))
	g.Line(o, math3d.V3(0, length, 0), RGB(0, 255, 0))
	g.Line(o, math3d.V3(0, 0, length), RGB(0, 0, 255))
}

// Circle draws a circle of the given radius in the model XZ plane.
func (g *Guides) Circle(center math3d.Vec3, radius float64, segments int, c Color) {
	segments = max(segments, 3)
	prev := center.Add(math3d.V3(radius, 0, 0))
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		next := center.Add(math3d.V3(radius*math.Cos(a), 0, radius*math.Sin(a)))
		g.Line(prev, next, c)
		prev = next
	}
}

// Box draws the twelve edges of an axis-aligned box.
func (g *Guides) Box(box AABB, c Color) {
	var corners [8]math3d.Vec3
	for i := range corners {
		corners[i] = box.Min
		if i&1 != 0 {
			corners[i].X = box.Max.X
		}
		if i&2 != 0 {
			corners[i].Y = box.Max.Y
		}
		if i&4 != 0 {
			corners[i].Z = box.Max.Z
		}
	}
	// Corners differing in exactly one bit share an edge.
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				g.Line(corners[i], corners[j], c)
			}
		}
	}
}
