package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

const maxPitch = math.Pi/2 - 0.01

// Camera orbits a target point. It produces the view and projection
// matrices that go into Uniforms.
type Camera struct {
	Target   math3d.Vec3
	Distance float64
	Yaw      float64 // around Y, radians
	Pitch    float64 // around X, radians, clamped short of the poles

	FOV         float64 // vertical, radians
	AspectRatio float64
	Near        float64
	Far         float64
}

// NewCamera returns a camera looking at the origin from distance units
// down the +Z axis.
func NewCamera(distance, aspect float64) *Camera {
	return &Camera{
		Distance:    distance,
		FOV:         math.Pi / 3,
		AspectRatio: aspect,
		Near:        0.1,
		Far:         1000,
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() math3d.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := math3d.V3(
		math.Sin(c.Yaw)*cp,
		math.Sin(c.Pitch),
		math.Cos(c.Yaw)*cp,
	)
	return c.Target.Add(offset.Scale(c.Distance))
}

// Orbit rotates the eye around the target.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch = max(-maxPitch, min(maxPitch, c.Pitch+deltaPitch))
}

// Zoom multiplies the orbit distance by factor. The distance never drops
// below the near plane.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = max(c.Near*2, c.Distance*factor)
}

// Pan moves the target in the camera's screen plane.
func (c *Camera) Pan(dx, dy float64) {
	forward := c.Target.Sub(c.Eye()).Normalize()
	right := forward.Cross(math3d.Up()).Normalize()
	up := right.Cross(forward)
	c.Target = c.Target.Add(right.Scale(dx)).Add(up.Scale(dy))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.LookAt(c.Eye(), c.Target, math3d.Up())
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	return math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// Frustum returns the current view frustum.
func (c *Camera) Frustum() Frustum {
	return ExtractFrustum(c.ProjectionMatrix().Mul(c.ViewMatrix()))
}

// Apply writes the camera's view and projection into u.
func (c *Camera) Apply(u *Uniforms) {
	u.View = c.ViewMatrix()
	u.Projection = c.ProjectionMatrix()
}

// WorldToScreen projects a world point to pixel coordinates on a
// width x height target. visible is false behind the camera or outside
// the frustum.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) (x, y, depth float64, visible bool) {
	clip := c.ProjectionMatrix().Mul(c.ViewMatrix()).MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}
	screen := math3d.Viewport(0, 0, float64(width), float64(height)).MulVec3(ndc)
	return screen.X, screen.Y, ndc.Z, true
}
