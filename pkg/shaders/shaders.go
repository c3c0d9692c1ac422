// Package shaders holds the procedural planet shaders and the debug
// patterns, and registers them by name in a render.Registry.
package shaders

import (
	"github.com/taigrr/orrery/pkg/render"
)

// Shader names understood by Default.
const (
	SolarSurface        = "solar_surface"
	RockyPlanet         = "rocky_planet"
	GasGiant            = "gas_giant"
	GasGiantWithRings   = "gas_giant_with_rings"
	Ring                = "ring"
	Colorful            = "colorful"
	Exotic              = "exotic"
	DarkRed             = "dark_red"
	RockyPlanetWithMoon = "rocky_planet_with_moon"
	Moon                = "moon"

	TrigWaves   = "trig_waves"
	Stripes     = "stripes"
	VertexBands = "vertex_bands"
	LerpStripes = "lerp_stripes"
	Flat        = "flat"
)

// Register adds every built-in shader to r.
func Register(r *render.Registry) {
	for name, s := range planets() {
		r.Register(name, s)
	}
	r.RegisterFunc(TrigWaves, trigWaves)
	r.RegisterFunc(Stripes, stripes)
	r.RegisterFunc(VertexBands, vertexBands)
	r.RegisterFunc(LerpStripes, lerpStripes)
	r.RegisterFunc(Flat, flat)
}

// Default returns a registry with every built-in shader.
func Default() *render.Registry {
	r := render.NewRegistry()
	Register(r)
	return r
}
