package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
)

// Mesh supplies a triangle soup: consecutive vertex triples form triangles.
// Defined here so render does not import the models package.
type Mesh interface {
	VertexArray() []Vertex
}

// BoundedMesh is a Mesh that also knows its model-space bounding box,
// which lets DrawMesh skip it when it is outside the view frustum.
type BoundedMesh interface {
	Mesh
	GetBounds() (min, max math3d.Vec3)
}

// Stats counts what the pipeline did since the last ResetStats.
type Stats struct {
	Triangles    int // Triangles submitted
	Behind       int // Triangles skipped because they are behind the camera
	Clipped      int // Triangles cut by the near plane before rasterizing
	Degenerate   int // Triangles with no screen-space area
	Fragments    int // Fragments produced by the rasterizer
	Written      int // Fragments that passed the depth test
	MeshesCulled int // Meshes rejected by the frustum test
}

// Renderer runs the transform, rasterize, shade and depth-test stages.
// It keeps scratch storage between calls, so one Renderer must not be used
// from several goroutines at once.
type Renderer struct {
	Shaders *Registry
	Stats   Stats

	transformed []TransformedVertex
	clipped     []TransformedVertex
}

// NewRenderer creates a renderer that shades with the given registry.
func NewRenderer(shaders *Registry) *Renderer {
	if shaders == nil {
		shaders = NewRegistry()
	}
	return &Renderer{Shaders: shaders}
}

// ResetStats zeroes the counters (call once per frame).
func (r *Renderer) ResetStats() {
	r.Stats = Stats{}
}

// Render draws vertices into fb. Vertices are grouped into consecutive
// triples; a trailing partial triple is ignored. Every fragment is shaded
// with sel and goes through fb.Commit, so the nearest fragment wins
// regardless of triangle order. Vertices without a color take fb's current
// draw color. Triangles crossing the near plane are clipped to it.
func (r *Renderer) Render(fb *Framebuffer, u *Uniforms, vertices []Vertex, sel Selector) {
	n := len(vertices) - len(vertices)%3
	if n == 0 {
		return
	}

	mvp := u.MVP()
	base := fb.CurrentColor()
	r.transformed = r.transformed[:0]
	for _, v := range vertices[:n] {
		r.transformed = append(r.transformed, transformWith(v, mvp, u.Viewport, base))
	}

	raster := NewRasterizer(fb.Width, fb.Height)
	for i := 0; i < n; i += 3 {
		v0, v1, v2 := &r.transformed[i], &r.transformed[i+1], &r.transformed[i+2]
		r.Stats.Triangles++

		if v0.W <= 0 && v1.W <= 0 && v2.W <= 0 {
			r.Stats.Behind++
			continue
		}
		d0, d1, d2 := nearDistance(v0), nearDistance(v1), nearDistance(v2)
		if d0 < 0 && d1 < 0 && d2 < 0 {
			r.Stats.Behind++
			continue
		}
		if d0 >= 0 && d1 >= 0 && d2 >= 0 {
			r.rasterize(fb, u, raster, v0, v1, v2, sel)
			continue
		}

		// Straddles the near plane. Projecting the eye-side corners would
		// smear the triangle across the screen, so cut them off first.
		r.Stats.Clipped++
		r.clipped = clipNear(r.clipped[:0], v0, v1, v2, u.Viewport)
		for j := 0; j < len(r.clipped); j += 3 {
			r.rasterize(fb, u, raster, &r.clipped[j], &r.clipped[j+1], &r.clipped[j+2], sel)
		}
	}
}

// rasterize shades and commits one screen-space triangle. Degenerate
// triangles are counted here and never reach the rasterizer.
func (r *Renderer) rasterize(fb *Framebuffer, u *Uniforms, raster Rasterizer, v0, v1, v2 *TransformedVertex, sel Selector) {
	if Degenerate(v0.Position, v1.Position, v2.Position) {
		r.Stats.Degenerate++
		return
	}
	for frag := range raster.covered(v0, v1, v2) {
		r.Stats.Fragments++
		c := r.Shaders.Shade(&frag, u, sel)
		if fb.Commit(frag.X, frag.Y, frag.Depth, c) {
			r.Stats.Written++
		}
	}
}

// DrawMesh renders mesh unless its bounds, moved by the model matrix, lie
// completely outside the view frustum. It reports whether the mesh was
// drawn. Meshes without bounds are always drawn.
func (r *Renderer) DrawMesh(fb *Framebuffer, u *Uniforms, mesh Mesh, sel Selector) bool {
	if bounded, ok := mesh.(BoundedMesh); ok {
		lo, hi := bounded.GetBounds()
		world := NewAABB(lo, hi).Transform(u.Model)
		if !ExtractFrustum(u.Projection.Mul(u.View)).IntersectAABB(world) {
			r.Stats.MeshesCulled++
			return false
		}
	}
	r.Render(fb, u, mesh.VertexArray(), sel)
	return true
}
