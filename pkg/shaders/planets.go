package shaders

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

// Planet surfaces. Object coordinates span roughly [-1, 1]; the samplers
// run at noise.DefaultFrequency, so Scale is in the hundreds.
var (
	solar = Surface{
		Palette:  Hexes(0x9E1A00, 0xE25A00, 0xFFA31A, 0xFFE27A, 0xFFFBE0),
		Scale:    320,
		Octaves:  3,
		Drift:    math3d.V3(0.6, 0.25, 0),
		Emissive: true,
		Tint:     0.1,
	}

	rocky = Surface{
		Palette: Hexes(0x2E2620, 0x5A4A3B, 0x8A7760, 0xB7A88F, 0xD9CFBD),
		Scale:   260,
		Octaves: 4,
		Ambient: 0.15,
		Tint:    0.15,
	}

	gasGiant = Surface{
		Palette:    Hexes(0xA8683E, 0xE8D2A6, 0xC99E6B, 0xF1E4C8, 0x8C5A3A),
		Scale:      180,
		Octaves:    2,
		Drift:      math3d.V3(0.35, 0, 0),
		Bands:      7,
		Turbulence: 0.45,
		Ambient:    0.2,
	}

	ringedGiant = Surface{
		Palette:    Hexes(0xBFA26A, 0xEADCB5, 0xD9C38F, 0xF5EBD0),
		Scale:      150,
		Octaves:    2,
		Drift:      math3d.V3(0.25, 0, 0),
		Bands:      5,
		Turbulence: 0.3,
		Ambient:    0.2,
	}

	rings = Surface{
		Palette: Hexes(0x6B5E4A, 0xC9B79A, 0x8F7F66, 0xE2D5BC),
		Scale:   900,
		Ambient: 0.35,
	}

	crust = Surface{
		Palette: Hexes(0x1A0504, 0x3D0A06, 0x5C120A, 0x2A0605),
		Scale:   240,
		Octaves: 3,
		Ambient: 0.2,
	}

	lava = Surface{
		Palette:  Hexes(0xFF3300, 0xFF7A00, 0xFFC040),
		Sampler:  noise.CellularName,
		Scale:    500,
		Drift:    math3d.V3(0, 0.2, 0),
		Emissive: true,
	}

	terran = Surface{
		Palette: Hexes(0x123A6B, 0x1F5E99, 0x3D7A3A, 0x6B8F44, 0x9C8A5C),
		Scale:   220,
		Octaves: 4,
		Ambient: 0.15,
	}

	lunar = Surface{
		Palette: Hexes(0x4A4A4A, 0x6E6E6E, 0x9A9A9A, 0xC4C4C4),
		Scale:   300,
		Octaves: 3,
		Ambient: 0.1,
		Tint:    0.3,
	}

	crystal = Surface{
		Palette: Hexes(0x240046, 0x5A189A, 0x3C9D9B, 0x7BF1E0),
		Sampler: noise.CellularName,
		Scale:   420,
		Ambient: 0.25,
	}

	swirl = Surface{
		Palette:    Hexes(0xFF4FD8, 0xFFD23F, 0x3EC1FF),
		Scale:      200,
		Octaves:    2,
		Drift:      math3d.V3(0.5, 0.5, 0),
		Bands:      3,
		Turbulence: 1.2,
		Ambient:    0.25,
	}
)

// planets returns the planet shaders keyed by name.
func planets() map[string]render.Shader {
	return map[string]render.Shader{
		SolarSurface:        render.ShaderFunc(solarSurface),
		RockyPlanet:         render.Composite(craters(rocky, 0.12), lit(rocky)),
		GasGiant:            render.Composite(storm(gasGiant), lit(gasGiant)),
		GasGiantWithRings:   ringedGiant,
		Ring:                render.ShaderFunc(ring),
		Colorful:            render.ShaderFunc(colorful),
		Exotic:              render.ShaderFunc(exotic),
		DarkRed:             render.Composite(lavaCracks, lit(crust)),
		RockyPlanetWithMoon: render.Composite(iceCaps, lit(terran)),
		Moon:                render.Composite(craters(lunar, 0.18), lit(lunar)),
	}
}

// lit turns a surface into an always-visible layer.
func lit(s Surface) render.Layer {
	return render.Solid(func(f *render.Fragment, u *render.Uniforms) render.Color {
		return s.Shade(f, u, render.BlendNormal)
	})
}

// solarSurface is an emissive boiling surface with cellular granulation
// darkening the convection cell borders.
func solarSurface(f *render.Fragment, u *render.Uniforms, _ render.BlendMode) render.Color {
	c := solar.Color(f, u)
	p := f.Object.Scale(600)
	cell := noise.Unit(u.Noise(noise.CellularName).Sample3(p.X, p.Y, p.Z+float64(u.Time)*0.3))
	return c.Sub(render.RGB(90, 40, 0).Scale(cell * cell))
}

// craters masks in dark pits wherever the cellular field is within radius
// of a feature point.
func craters(s Surface, radius float64) render.Layer {
	return render.NonBlack(func(f *render.Fragment, u *render.Uniforms) render.Color {
		p := f.Object.Scale(s.Scale * 1.5)
		d := noise.Unit(u.Noise(noise.CellularName).Sample3(p.X, p.Y, p.Z))
		if d >= radius {
			return render.Black
		}
		rim := d / radius
		return s.Lit(s.Color(f, u).Scale(0.45+0.4*rim), f, u)
	})
}

// storm masks in a great oval spot drifting with the bands.
func storm(s Surface) render.Layer {
	spot := render.Hex(0xB5452C)
	return render.NonBlack(func(f *render.Fragment, u *render.Uniforms) render.Color {
		center := math3d.V3(math.Cos(float64(u.Time)*0.004), -0.35, math.Sin(float64(u.Time)*0.004)).Normalize()
		d := f.Object.Normalize().Sub(center)
		d.X *= 0.6
		d.Z *= 0.6
		r := d.Len()
		if r > 0.25 {
			return render.Black
		}
		return s.Lit(s.Color(f, u).Lerp(spot, 1-r/0.25), f, u)
	})
}

// crackEdge is the cellular distance beyond which the crust splits.
const crackEdge = 0.62

// lavaCracks draws glowing fissures along cellular cell borders, where the
// distance to the nearest feature point is largest.
func lavaCracks(f *render.Fragment, u *render.Uniforms) (render.Color, bool) {
	v := lava.Value(f, u)
	if v < crackEdge {
		return render.Black, false
	}
	return lava.Palette.At((v - crackEdge) / (1 - crackEdge)), true
}

// iceCaps whitens high latitudes, with a noisy edge.
func iceCaps(f *render.Fragment, u *render.Uniforms) (render.Color, bool) {
	lat := math.Abs(f.Object.Normalize().Y)
	edge := 0.78 + 0.08*terran.Value(f, u)
	if lat < edge {
		return render.Black, false
	}
	return terran.Lit(render.Hex(0xEEF4F8), f, u), true
}

// ring shades the ring mesh with concentric bands. Narrow gaps are drawn
// dark since the framebuffer has no alpha to show through.
func ring(f *render.Fragment, u *render.Uniforms, _ render.BlendMode) render.Color {
	r := math.Hypot(f.Object.X, f.Object.Z)
	n := u.Noise(noise.SimplexName).Sample2(r*rings.Scale, 0)
	c := rings.Palette.At(noise.Unit(math.Sin(r*55)*0.7 + n*0.3))
	if math.Sin(r*23) > 0.92 {
		c = c.Scale(0.25)
	}
	return rings.Lit(c, f, u)
}

// colorful layers moving noise blotches over the trig-wave pattern using
// the selector's blend mode. Blotches are black outside their threshold,
// so with the normal mode the waves show through there.
func colorful(f *render.Fragment, u *render.Uniforms, mode render.BlendMode) render.Color {
	base := trigWaves(f, u, mode)
	p := f.Object.Scale(250).Add(math3d.V3(float64(u.Time)*0.4, 0, 0))
	n := noise.Unit(fbm(u.Noise(noise.SimplexName), p, 2))
	top := render.Black
	if n > 0.55 {
		top = Hexes(0xFF006E, 0xFB5607, 0xFFBE0B, 0x8338EC).At((n - 0.55) / 0.45)
	}
	return swirl.Lit(base.Blend(top, mode), f, u)
}

// exotic blends time-swirled bands over a crystalline cellular base.
func exotic(f *render.Fragment, u *render.Uniforms, mode render.BlendMode) render.Color {
	base := crystal.Color(f, u)
	top := render.Black
	if v := swirl.Value(f, u); v > 0.6 {
		top = swirl.Palette.At((v - 0.6) / 0.4)
	}
	return crystal.Lit(base.Blend(top, mode), f, u)
}
