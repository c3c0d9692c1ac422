// Package noise provides deterministic coherent-noise samplers used by the
// procedural planet shaders. Samplers are seeded once and are immutable
// afterwards, so they can be shared between frames without locking.
package noise

// Sampler is a deterministic function from 2D or 3D coordinates to a value
// in [-1, 1].
type Sampler interface {
	Name() string
	Sample2(x, y float64) float64
	Sample3(x, y, z float64) float64
}

// Names of the samplers the planet shaders look up.
const (
	SimplexName  = "simplex"
	CellularName = "cellular"
)

// Flat is a sampler that always returns zero. It stands in for a missing
// sampler so a lookup never yields nil.
var Flat Sampler = flat{}

type flat struct{}

func (flat) Name() string                   { return "flat" }
func (flat) Sample2(_, _ float64) float64    { return 0 }
func (flat) Sample3(_, _, _ float64) float64 { return 0 }

// Unit remaps a sampler value from [-1, 1] to [0, 1].
func Unit(v float64) float64 {
	return v*0.5 + 0.5
}
