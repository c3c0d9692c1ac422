// Package render implements the orrery software rasterization pipeline:
// vertex transform, triangle rasterization with barycentric interpolation,
// depth-tested framebuffer writes, and procedural shading dispatch.
package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
)

// Vertex is a model-space vertex as supplied by a mesh.
type Vertex struct {
	Position  math3d.Vec3 // Model-space position
	Normal    math3d.Vec3 // Normal vector (for lighting)
	Intensity float64     // Per-vertex light intensity, 1 when unlit
	Color     Color       // Vertex color, used only when HasColor is set
	HasColor  bool
}

// TransformedVertex is a vertex after the transform stage.
type TransformedVertex struct {
	Position  math3d.Vec2 // Screen coordinates
	Depth     float64     // Post-divide z; smaller is nearer
	W         float64     // Clip-space w before the divide
	Normal    math3d.Vec3 // Model-space normal, passed through
	Intensity float64
	Color     Color
	Object    math3d.Vec3 // Original model-space position

	clip math3d.Vec4
}

// Fragment is one covered pixel of a triangle, with every attribute
// interpolated from the three parent vertices.
type Fragment struct {
	X, Y      int
	Depth     float64
	Normal    math3d.Vec3
	Intensity float64
	Object    math3d.Vec3
	Color     Color
	Weights   math3d.Vec3 // Barycentric weights of v0, v1, v2
}
