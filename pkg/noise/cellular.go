package noise

import "math"

// DistanceFunc selects the metric used to measure distance to the nearest
// feature point.
type DistanceFunc int

const (
	Euclidean DistanceFunc = iota
	Manhattan
)

// Cellular samples Worley (cellular) noise: the distance from the sample
// point to the nearest jittered feature point, remapped to [-1, 1].
type Cellular struct {
	seed      uint64
	frequency float64
	distance  DistanceFunc
	jitter    float64
}

// NewCellular creates a cellular sampler. A frequency <= 0 falls back to
// DefaultFrequency.
func NewCellular(seed int64, frequency float64, distance DistanceFunc) *Cellular {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	return &Cellular{
		seed:      uint64(seed),
		frequency: frequency,
		distance:  distance,
		jitter:    1.0,
	}
}

// Name implements Sampler.
func (c *Cellular) Name() string { return CellularName }

// Sample2 implements Sampler.
func (c *Cellular) Sample2(x, y float64) float64 {
	return c.Sample3(x, y, 0)
}

// Sample3 implements Sampler.
func (c *Cellular) Sample3(x, y, z float64) float64 {
	x, y, z = x*c.frequency, y*c.frequency, z*c.frequency
	cx, cy, cz := math.Floor(x), math.Floor(y), math.Floor(z)

	nearest := math.MaxFloat64
	for dz := -1.0; dz <= 1; dz++ {
		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				ix, iy, iz := cx+dx, cy+dy, cz+dz
				h := hash3(c.seed, int64(ix), int64(iy), int64(iz))
				fx := ix + unitFromBits(h)*c.jitter
				fy := iy + unitFromBits(h>>21)*c.jitter
				fz := iz + unitFromBits(h>>42)*c.jitter
				if d := c.measure(fx-x, fy-y, fz-z); d < nearest {
					nearest = d
				}
			}
		}
	}
	return clampUnit(nearest*2 - 1)
}

func (c *Cellular) measure(dx, dy, dz float64) float64 {
	if c.distance == Manhattan {
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// hash3 mixes a seed and a lattice cell into 64 well-distributed bits
// (splitmix64 finalizer).
func hash3(seed uint64, x, y, z int64) uint64 {
	h := seed ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

// unitFromBits maps the low 21 bits to [0, 1).
func unitFromBits(h uint64) float64 {
	return float64(h&0x1FFFFF) / float64(1<<21)
}
