package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
)

// Uniforms holds the values that stay constant across one Render call.
// The driver updates them between frames; the pipeline only reads them.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4
	Time       uint32      // Frame counter
	Light      math3d.Vec3 // Direction towards the light, model space

	noise map[string]noise.Sampler
}

// NewUniforms creates uniforms with identity matrices, a light shining
// from the viewer, and the given noise samplers keyed by their names.
func NewUniforms(samplers ...noise.Sampler) *Uniforms {
	u := &Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Identity(),
		Light:      math3d.V3(0, 0, 1),
		noise:      make(map[string]noise.Sampler, len(samplers)),
	}
	for _, s := range samplers {
		u.noise[s.Name()] = s
	}
	return u
}

// Noise returns the sampler registered under name, or noise.Flat.
func (u *Uniforms) Noise(name string) noise.Sampler {
	if s, ok := u.noise[name]; ok && s != nil {
		return s
	}
	return noise.Flat
}

// MVP returns Projection * View * Model.
func (u *Uniforms) MVP() math3d.Mat4 {
	return u.Projection.Mul(u.View).Mul(u.Model)
}
