package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/shaders"
)

// Body selects which celestial body the scene shows. The zero value means
// "no body" so that Input can leave the selection untouched; the real
// bodies are numbered to match the 1..8 selection keys.
type Body int

const (
	NoBody Body = iota
	Star
	RockyPlanet
	GasGiant
	GasGiantWithRings
	Colorful
	Exotic
	DarkRed
	RockyPlanetWithMoon
)

// ErrUnknownBody is returned by ParseBody for names it does not know.
var ErrUnknownBody = errors.New("unknown body")

type bodyInfo struct {
	name   string
	shader string
	color  render.Color // current draw color handed to the shaders
	rings  bool
	moon   bool
}

var bodies = [...]bodyInfo{
	Star:                {name: "star", shader: shaders.SolarSurface, color: render.Hex(0xFFDDDD)},
	RockyPlanet:         {name: "rocky_planet", shader: shaders.RockyPlanet, color: render.Hex(0xAAAAAA)},
	GasGiant:            {name: "gas_giant", shader: shaders.GasGiant, color: render.Hex(0x00FFAA)},
	GasGiantWithRings:   {name: "gas_giant_with_rings", shader: shaders.GasGiantWithRings, color: render.Hex(0x00FFAA), rings: true},
	Colorful:            {name: "colorful", shader: shaders.Colorful, color: render.Hex(0x00FFAA)},
	Exotic:              {name: "exotic", shader: shaders.Exotic, color: render.Hex(0x00FFAA)},
	DarkRed:             {name: "dark_red", shader: shaders.DarkRed, color: render.Hex(0x00FFAA)},
	RockyPlanetWithMoon: {name: "rocky_planet_with_moon", shader: shaders.RockyPlanetWithMoon, color: render.Hex(0xAAAAAA), moon: true},
}

// Colors of the satellites drawn alongside some bodies.
var (
	RingColor = render.Hex(0xC8B48C)
	MoonColor = render.Hex(0x888888)
)

// Bodies returns every selectable body in key order.
func Bodies() []Body {
	out := make([]Body, 0, len(bodies)-1)
	for b := Star; int(b) < len(bodies); b++ {
		out = append(out, b)
	}
	return out
}

// Valid reports whether b is one of the selectable bodies.
func (b Body) Valid() bool {
	return b > NoBody && int(b) < len(bodies)
}

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodies[b].name
}

// Shader returns the name of the shader the body is drawn with.
func (b Body) Shader() string {
	if !b.Valid() {
		return ""
	}
	return bodies[b].shader
}

// Color returns the current draw color for the body.
func (b Body) Color() render.Color {
	if !b.Valid() {
		return render.Black
	}
	return bodies[b].color
}

// HasRings reports whether a ring is drawn around the body.
func (b Body) HasRings() bool { return b.Valid() && bodies[b].rings }

// HasMoon reports whether a moon orbits the body.
func (b Body) HasMoon() bool { return b.Valid() && bodies[b].moon }

// ParseBody resolves a body by name ("gas_giant", "Gas-Giant") or by its
// selection key ("3").
func ParseBody(s string) (Body, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	if n, err := strconv.Atoi(name); err == nil {
		if b := Body(n); b.Valid() {
			return b, nil
		}
		return NoBody, fmt.Errorf("%w: %q", ErrUnknownBody, s)
	}
	for _, b := range Bodies() {
		if bodies[b].name == name {
			return b, nil
		}
	}
	return NoBody, fmt.Errorf("%w: %q", ErrUnknownBody, s)
}

// BodyForKey maps the selection keys '1'..'8' to bodies.
func BodyForKey(r rune) (Body, bool) {
	if r < '1' || r > '9' {
		return NoBody, false
	}
	b := Body(r - '0')
	return b, b.Valid()
}
