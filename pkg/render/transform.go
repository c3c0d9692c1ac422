package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
)

// Transform maps a model-space vertex to screen space using the uniforms'
// model, view, projection and viewport matrices.
func Transform(v Vertex, u *Uniforms, base Color) TransformedVertex {
	return transformWith(v, u.MVP(), u.Viewport, base)
}

// transformWith is Transform with the MVP product already computed, so a
// mesh pays for the matrix chain once instead of per vertex.
//
// The normal is carried through without a normal-matrix correction. That is
// exact for rotations and uniform scale, which is all the scene uses.
func transformWith(v Vertex, mvp, viewport math3d.Mat4, base Color) TransformedVertex {
	c := base
	if v.HasColor {
		c = v.Color
	}

	tv := TransformedVertex{
		Normal:    v.Normal,
		Intensity: v.Intensity,
		Color:     c,
		Object:    v.Position,
	}
	tv.project(mvp.MulVec4(math3d.V4FromV3(v.Position, 1)), viewport)
	return tv
}

// project sets the screen position, depth and w from a clip-space position.
func (tv *TransformedVertex) project(clip math3d.Vec4, viewport math3d.Mat4) {
	ndc := clip.PerspectiveDivide()
	screen := viewport.MulVec3(ndc)
	tv.Position = math3d.V2(screen.X, screen.Y)
	tv.Depth = ndc.Z
	tv.W = clip.W
	tv.clip = clip
}
