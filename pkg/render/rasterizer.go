package render

import (
	"iter"
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// degenerateArea is the twice-area below which a triangle is treated as
// having no interior.
const degenerateArea = 1e-9

// Rasterizer converts screen-space triangles into fragments, clipped to a
// Width x Height viewport.
type Rasterizer struct {
	Width  int
	Height int
}

// NewRasterizer creates a rasterizer for the given viewport size.
func NewRasterizer(width, height int) Rasterizer {
	return Rasterizer{Width: width, Height: height}
}

// SignedArea returns twice the signed area of the screen-space triangle.
// It is positive for counter-clockwise winding in a y-up frame.
func SignedArea(a, b, c math3d.Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Degenerate reports whether the triangle has (almost) zero area or a
// non-finite corner. Degenerate triangles produce no fragments.
func Degenerate(a, b, c math3d.Vec2) bool {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return true
	}
	return math.Abs(SignedArea(a, b, c)) < degenerateArea
}

// Barycentric returns the weights of a, b and c at point p. ok is false
// for a degenerate triangle.
func Barycentric(p, a, b, c math3d.Vec2) (w math3d.Vec3, ok bool) {
	if Degenerate(a, b, c) {
		return math3d.Vec3{}, false
	}
	inv := 1.0 / SignedArea(a, b, c)
	return math3d.V3(
		SignedArea(b, c, p)*inv,
		SignedArea(c, a, p)*inv,
		SignedArea(a, b, p)*inv,
	), true
}

// edgeCoeffs returns A, B, C for the edge function of the directed edge
// (x0, y0) -> (x1, y1): edge(x, y) = A*x + B*y + C, which is the cross
// product (p1 - p0) x (p - p0).
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1
	B = x1 - x0
	C = x0*y1 - x1*y0
	return
}

// Bounds returns the integer bounding box of the triangle clamped to the
// viewport. empty is true when nothing of the box is on screen.
func (r Rasterizer) Bounds(a, b, c math3d.Vec2) (minX, minY, maxX, maxY int, empty bool) {
	fMinX := math.Max(0, math.Floor(min3(a.X, b.X, c.X)))
	fMaxX := math.Min(float64(r.Width-1), math.Ceil(max3(a.X, b.X, c.X)))
	fMinY := math.Max(0, math.Floor(min3(a.Y, b.Y, c.Y)))
	fMaxY := math.Min(float64(r.Height-1), math.Ceil(max3(a.Y, b.Y, c.Y)))
	if fMinX > fMaxX || fMinY > fMaxY {
		return 0, 0, 0, 0, true
	}
	return int(fMinX), int(fMinY), int(fMaxX), int(fMaxY), false
}

// Triangle yields one fragment per integer pixel covered by the triangle.
//
// Coverage is tested at integer grid points with incremental edge
// functions. A point is covered when all three barycentric weights are
// >= 0, so pixels exactly on an edge belong to every triangle sharing it.
// Both windings are rasterized. A degenerate triangle yields nothing.
func (r Rasterizer) Triangle(v0, v1, v2 *TransformedVertex) iter.Seq[Fragment] {
	if Degenerate(v0.Position, v1.Position, v2.Position) {
		return func(func(Fragment) bool) {}
	}
	return r.covered(v0, v1, v2)
}

// covered is Triangle for a triangle the caller already checked with
// Degenerate.
func (r Rasterizer) covered(v0, v1, v2 *TransformedVertex) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		p0, p1, p2 := v0.Position, v1.Position, v2.Position
		minX, minY, maxX, maxY, empty := r.Bounds(p0, p1, p2)
		if empty {
			return
		}

		// Edge i is opposite vertex i.
		A0, B0, C0 := edgeCoeffs(p1.X, p1.Y, p2.X, p2.Y)
		A1, B1, C1 := edgeCoeffs(p2.X, p2.Y, p0.X, p0.Y)
		A2, B2, C2 := edgeCoeffs(p0.X, p0.Y, p1.X, p1.Y)
		invArea := 1.0 / SignedArea(p0, p1, p2)

		px, py := float64(minX), float64(minY)
		e0Row := A0*px + B0*py + C0
		e1Row := A1*px + B1*py + C1
		e2Row := A2*px + B2*py + C2

		for y := minY; y <= maxY; y++ {
			e0, e1, e2 := e0Row, e1Row, e2Row

			for x := minX; x <= maxX; x++ {
				w0, w1, w2 := e0*invArea, e1*invArea, e2*invArea

				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					frag := Fragment{
						X:         x,
						Y:         y,
						Depth:     w0*v0.Depth + w1*v1.Depth + w2*v2.Depth,
						Normal:    math3d.Weighted(v0.Normal, v1.Normal, v2.Normal, w0, w1, w2),
						Intensity: w0*v0.Intensity + w1*v1.Intensity + w2*v2.Intensity,
						Object:    math3d.Weighted(v0.Object, v1.Object, v2.Object, w0, w1, w2),
						Color:     interpolateColor3(v0.Color, v1.Color, v2.Color, w0, w1, w2),
						Weights:   math3d.V3(w0, w1, w2),
					}
					if !yield(frag) {
						return
					}
				}

				e0 += A0
				e1 += A1
				e2 += A2
			}

			e0Row += B0
			e1Row += B1
			e2Row += B2
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
