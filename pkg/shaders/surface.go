package shaders

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

// Surface is a data-driven planet surface. A noise field sampled in object
// space is optionally bent into latitude bands, remapped through Palette
// and lit with the uniform light.
type Surface struct {
	Palette Palette
	Sampler string // noise sampler name; empty means simplex

	// Scale multiplies object-space coordinates before sampling. The
	// samplers apply their own frequency on top.
	Scale   float64
	Octaves int
	Drift   math3d.Vec3 // sample-space scroll per frame

	// Bands > 0 turns the field into that many latitude bands, with the
	// noise offsetting them by Turbulence.
	Bands      float64
	Turbulence float64

	Emissive bool    // skip lighting
	Ambient  float64 // light floor for the dark side
	Tint     float64 // how far to pull toward the fragment color
}

// Value returns the surface's field at f, in [0, 1].
func (s Surface) Value(f *render.Fragment, u *render.Uniforms) float64 {
	name := s.Sampler
	if name == "" {
		name = noise.SimplexName
	}
	p := f.Object.Scale(s.Scale).Add(s.Drift.Scale(float64(u.Time)))
	n := fbm(u.Noise(name), p, s.Octaves)
	if s.Bands <= 0 {
		return noise.Unit(n)
	}
	lat := f.Object.Normalize().Y
	return 0.5 + 0.5*math.Sin((lat*s.Bands+n*s.Turbulence)*math.Pi)
}

// Color returns the unlit surface color at f.
func (s Surface) Color(f *render.Fragment, u *render.Uniforms) render.Color {
	c := s.Palette.At(s.Value(f, u))
	if s.Tint > 0 {
		c = c.Lerp(f.Color, s.Tint)
	}
	return c
}

// Shade implements render.Shader.
func (s Surface) Shade(f *render.Fragment, u *render.Uniforms, _ render.BlendMode) render.Color {
	return s.Lit(s.Color(f, u), f, u)
}

// Lit applies the surface's lighting to c.
func (s Surface) Lit(c render.Color, f *render.Fragment, u *render.Uniforms) render.Color {
	if s.Emissive {
		return c
	}
	return c.Scale(diffuse(f, u, s.Ambient))
}

// fbm sums octaves of a sampler, halving amplitude and doubling frequency
// each time. The result stays in [-1, 1].
func fbm(s noise.Sampler, p math3d.Vec3, octaves int) float64 {
	octaves = max(octaves, 1)
	var sum, norm float64
	amp := 1.0
	for range octaves {
		sum += s.Sample3(p.X, p.Y, p.Z) * amp
		norm += amp
		amp *= 0.5
		p = p.Scale(2)
	}
	return sum / norm
}

// diffuse is Lambert lighting against the uniform light, scaled by the
// fragment intensity and floored at ambient.
func diffuse(f *render.Fragment, u *render.Uniforms, ambient float64) float64 {
	n := f.Normal.Normalize()
	if n == (math3d.Vec3{}) {
		return f.Intensity
	}
	lambert := max(n.Dot(u.Light.Normalize()), 0)
	return f.Intensity * (ambient + (1-ambient)*lambert)
}
