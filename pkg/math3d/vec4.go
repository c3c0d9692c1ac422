package math3d

import "math"

// MinW is the smallest homogeneous w magnitude allowed through a
// perspective divide. Smaller values are clamped, keeping their sign.
const MinW = 1e-6

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// SafeW returns W clamped away from zero to at least MinW in magnitude.
// Zero and NaN are treated as positive.
func (v Vec4) SafeW() float64 {
	switch {
	case v.W >= MinW || v.W <= -MinW:
		return v.W
	case v.W < 0:
		return -MinW
	default:
		return MinW
	}
}

// PerspectiveDivide returns the Vec3 after dividing by W.
// W is clamped with SafeW, so the result is finite for finite input.
func (v Vec4) PerspectiveDivide() Vec3 {
	inv := 1.0 / v.SafeW()
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}
