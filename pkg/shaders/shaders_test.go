package shaders

import (
	"math"
	"slices"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

func seeded() *render.Uniforms {
	u := render.NewUniforms(
		noise.NewOpenSimplex(1337, noise.DefaultFrequency),
		noise.NewCellular(1337, noise.DefaultFrequency, noise.Manhattan),
	)
	u.Time = 42
	return u
}

func fragmentAt(p math3d.Vec3) *render.Fragment {
	return &render.Fragment{
		X: 120, Y: 85,
		Object:    p,
		Normal:    p.Normalize(),
		Intensity: 1,
		Color:     render.Hex(0xAAAAAA),
	}
}

func TestDefaultRegistersEverything(t *testing.T) {
	want := []string{
		Colorful, DarkRed, Exotic, Flat, GasGiant, GasGiantWithRings,
		LerpStripes, Moon, Ring, RockyPlanet, RockyPlanetWithMoon,
		SolarSurface, Stripes, TrigWaves, VertexBands,
	}
	slices.Sort(want)
	if got := Default().Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v\nwant %v", got, want)
	}
}

func TestShadersDeterministic(t *testing.T) {
	reg := Default()
	points := []math3d.Vec3{
		math3d.V3(0, 0, 1),
		math3d.V3(0.3, -0.8, 0.52),
		math3d.V3(-0.7, 0.7, 0.1),
		math3d.V3(1.4, 0, 0.2),
	}

	for _, name := range reg.Names() {
		for _, mode := range render.BlendModes() {
			sel := render.Selector{Name: name, Mode: mode}
			t.Run(sel.String(), func(t *testing.T) {
				for _, p := range points {
					a := reg.Shade(fragmentAt(p), seeded(), sel)
					b := reg.Shade(fragmentAt(p), seeded(), sel)
					if a != b {
						t.Fatalf("at %v: %v then %v", p, a, b)
					}
				}
			})
		}
	}
}

func TestShadersSurviveMissingNoise(t *testing.T) {
	reg := Default()
	u := render.NewUniforms()
	f := &render.Fragment{Object: math3d.V3(0, 0, 0)}
	for _, name := range reg.Names() {
		reg.Shade(f, u, render.Select(name))
	}
}

func TestAnimatedShadersChangeOverTime(t *testing.T) {
	reg := Default()
	for _, name := range []string{SolarSurface, GasGiant} {
		t.Run(name, func(t *testing.T) {
			early, late := seeded(), seeded()
			late.Time = 5000
			changed := false
			for i := range 16 {
				a := float64(i) * 0.39
				p := math3d.V3(math.Cos(a), math.Sin(a*1.7)*0.5, math.Sin(a))
				if reg.Shade(fragmentAt(p), early, render.Select(name)) != reg.Shade(fragmentAt(p), late, render.Select(name)) {
					changed = true
					break
				}
			}
			if !changed {
				t.Error("output did not change with time")
			}
		})
	}
}

func TestExoticMasking(t *testing.T) {
	u := render.NewUniforms() // flat noise
	equator := &render.Fragment{Object: math3d.V3(1, 0, 0), Intensity: 1}
	base := crystal.Palette.At(0.5)

	// The swirl layer is black at the equator, so every mode keeps the base.
	for _, mode := range []render.BlendMode{render.BlendNormal, render.BlendAdd, render.BlendScreen} {
		if got := exotic(equator, u, mode); got != base {
			t.Errorf("%v: got %v, want base %v", mode, got, base)
		}
	}

	// At latitude 1/6 the bands peak and the swirl wins under normal mode.
	band := &render.Fragment{Object: math3d.V3(math.Sqrt(35)/6, 1.0/6, 0), Intensity: 1}
	if got, want := exotic(band, u, render.BlendNormal), render.Hex(0x3EC1FF); got != want {
		t.Errorf("band: got %v, want %v", got, want)
	}
}

func TestCompositeLayers(t *testing.T) {
	reg := Default()
	u := render.NewUniforms()

	pole := &render.Fragment{Object: math3d.V3(0, 1, 0), Intensity: 1}
	if got := reg.Shade(pole, u, render.Select(RockyPlanetWithMoon)); got != render.Hex(0xEEF4F8) {
		t.Errorf("pole = %v, want ice", got)
	}

	equator := &render.Fragment{Object: math3d.V3(1, 0, 0), Intensity: 1}
	if got, want := reg.Shade(equator, u, render.Select(RockyPlanetWithMoon)), terran.Palette.At(0.5); got != want {
		t.Errorf("equator = %v, want land %v", got, want)
	}

	// Flat cellular noise sits mid-cell: no cracks, no craters.
	if got, want := reg.Shade(equator, u, render.Select(DarkRed)), crust.Palette.At(0.5); got != want {
		t.Errorf("dark_red = %v, want crust %v", got, want)
	}
	if got, want := reg.Shade(equator, u, render.Select(RockyPlanet)), rocky.Color(equator, u); got != want {
		t.Errorf("rocky = %v, want %v", got, want)
	}
}

func TestPaletteAt(t *testing.T) {
	p := Hexes(0x000000, 0xFF0000, 0xFFFFFF)

	tests := []struct {
		t    float64
		want render.Color
	}{
		{-1, render.Black},
		{0, render.Black},
		{0.25, render.RGB(128, 0, 0)},
		{0.5, render.RGB(255, 0, 0)},
		{1, render.White},
		{2, render.White},
		{math.NaN(), render.Black},
	}

	for _, tc := range tests {
		if got := p.At(tc.t); got != tc.want {
			t.Errorf("At(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
	if got := (Palette{}).At(0.5); got != render.Black {
		t.Errorf("empty palette = %v", got)
	}
}

func TestStripes(t *testing.T) {
	u := render.NewUniforms()
	tests := []struct {
		y    int
		want render.Color
	}{
		{0, render.RGB(255, 0, 0)},
		{19, render.RGB(255, 0, 0)},
		{20, render.RGB(0, 255, 0)},
		{75, render.RGB(255, 255, 0)},
		{80, render.RGB(255, 0, 0)},
		{-5, render.RGB(255, 0, 0)},
	}
	for _, tc := range tests {
		if got := stripes(&render.Fragment{Y: tc.y}, u, render.BlendNormal); got != tc.want {
			t.Errorf("stripes(y=%d) = %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestLerpStripes(t *testing.T) {
	u := render.NewUniforms()
	f := &render.Fragment{Object: math3d.V3(0, 0.025, 0), Intensity: 1}
	if got := lerpStripes(f, u, render.BlendNormal); got != render.RGB(191, 64, 0) {
		t.Errorf("quarter way = %v", got)
	}
	f.Intensity = 0
	if got := lerpStripes(f, u, render.BlendNormal); got != render.Black {
		t.Errorf("unlit = %v", got)
	}
}

func TestTrigWavesIgnoresScreenAndTime(t *testing.T) {
	p := math3d.V3(0.2, -0.4, 0.9)
	a := trigWaves(&render.Fragment{X: 1, Y: 2, Object: p}, render.NewUniforms(), render.BlendNormal)
	u := seeded()
	b := trigWaves(&render.Fragment{X: 300, Y: 200, Object: p}, u, render.BlendNormal)
	if a != b {
		t.Errorf("%v != %v", a, b)
	}
}

func TestFlatLighting(t *testing.T) {
	u := render.NewUniforms()
	lit := &render.Fragment{Normal: math3d.V3(0, 0, 1), Intensity: 1, Color: render.RGB(200, 100, 50)}
	if got := flat(lit, u, render.BlendNormal); got != lit.Color {
		t.Errorf("facing light = %v, want %v", got, lit.Color)
	}
	dark := &render.Fragment{Normal: math3d.V3(0, 0, -1), Intensity: 1, Color: render.RGB(200, 100, 50)}
	if got := flat(dark, u, render.BlendNormal); got != render.RGB(40, 20, 10) {
		t.Errorf("facing away = %v, want ambient", got)
	}
}

func BenchmarkPlanetShaders(b *testing.B) {
	reg := Default()
	u := seeded()
	f := fragmentAt(math3d.V3(0.3, -0.8, 0.52))
	for _, name := range []string{SolarSurface, GasGiant, Exotic, DarkRed} {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				reg.Shade(f, u, render.Select(name))
			}
		})
	}
}
