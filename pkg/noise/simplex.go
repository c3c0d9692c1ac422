package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// DefaultFrequency matches the coordinate scale the planet shaders were
// tuned for.
const DefaultFrequency = 0.01

// OpenSimplex samples OpenSimplex gradient noise.
type OpenSimplex struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewOpenSimplex creates an OpenSimplex sampler. A frequency <= 0 falls back
// to DefaultFrequency.
func NewOpenSimplex(seed int64, frequency float64) *OpenSimplex {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	return &OpenSimplex{
		noise:     opensimplex.New(seed),
		frequency: frequency,
	}
}

// Name implements Sampler.
func (s *OpenSimplex) Name() string { return SimplexName }

// Sample2 implements Sampler.
func (s *OpenSimplex) Sample2(x, y float64) float64 {
	return clampUnit(s.noise.Eval2(x*s.frequency, y*s.frequency))
}

// Sample3 implements Sampler.
func (s *OpenSimplex) Sample3(x, y, z float64) float64 {
	f := s.frequency
	return clampUnit(s.noise.Eval3(x*f, y*f, z*f))
}

func clampUnit(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
