package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Shader computes the final color of a fragment. Implementations must be
// pure: the same fragment and uniforms always produce the same color.
// mode is the secondary blend-mode token of the selector; shaders that do
// not layer anything ignore it.
type Shader interface {
	Shade(f *Fragment, u *Uniforms, mode BlendMode) Color
}

// ShaderFunc adapts an ordinary function to the Shader interface.
type ShaderFunc func(f *Fragment, u *Uniforms, mode BlendMode) Color

// Shade implements Shader.
func (fn ShaderFunc) Shade(f *Fragment, u *Uniforms, mode BlendMode) Color {
	return fn(f, u, mode)
}

// Selector picks a shader by name plus an optional blend mode for the
// layered shaders.
type Selector struct {
	Name string
	Mode BlendMode
}

// Select is shorthand for a Selector with the default blend mode.
func Select(name string) Selector {
	return Selector{Name: name}
}

func (s Selector) String() string {
	if s.Mode == BlendNormal {
		return s.Name
	}
	return s.Name + "+" + s.Mode.String()
}

// ParseSelector parses "name" or "name+mode", e.g. "exotic+screen".
func ParseSelector(s string) (Selector, error) {
	name, mode, found := strings.Cut(strings.TrimSpace(s), "+")
	sel := Selector{Name: strings.TrimSpace(name)}
	if !found {
		return sel, nil
	}
	m, err := ParseBlendMode(mode)
	if err != nil {
		return sel, fmt.Errorf("parse selector %q: %w", s, err)
	}
	sel.Mode = m
	return sel, nil
}

// ErrUnknownShader reports a selector naming no registered shader.
var ErrUnknownShader = errors.New("unknown shader")

// Registry maps shader names to shaders. Register everything at startup;
// lookups afterwards are read-only and safe to share.
type Registry struct {
	shaders map[string]Shader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{shaders: make(map[string]Shader)}
}

// Register adds or replaces the shader for name.
func (r *Registry) Register(name string, s Shader) {
	r.shaders[name] = s
}

// RegisterFunc registers a plain function as a shader.
func (r *Registry) RegisterFunc(name string, fn func(f *Fragment, u *Uniforms, mode BlendMode) Color) {
	r.Register(name, ShaderFunc(fn))
}

// Lookup returns the shader registered under name.
func (r *Registry) Lookup(name string) (Shader, bool) {
	s, ok := r.shaders[name]
	return s, ok
}

// Names returns the registered shader names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shaders))
	for name := range r.shaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Shade runs the selected shader. An unknown name yields Black instead of
// an error, so a bad selector never aborts a frame.
func (r *Registry) Shade(f *Fragment, u *Uniforms, sel Selector) Color {
	s, ok := r.shaders[sel.Name]
	if !ok {
		return Black
	}
	return s.Shade(f, u, sel.Mode)
}

// Layer is one contribution of a composite shader. The bool reports
// whether the layer drew anything at this fragment; when it is false the
// color is ignored.
type Layer func(f *Fragment, u *Uniforms) (Color, bool)

// Solid returns a layer that always draws fn's color, black included.
func Solid(fn func(f *Fragment, u *Uniforms) Color) Layer {
	return func(f *Fragment, u *Uniforms) (Color, bool) {
		return fn(f, u), true
	}
}

// NonBlack returns a layer that treats a pure black result of fn as
// "nothing drawn". This is the masking convention the planet shaders were
// written against.
func NonBlack(fn func(f *Fragment, u *Uniforms) Color) Layer {
	return func(f *Fragment, u *Uniforms) (Color, bool) {
		c := fn(f, u)
		return c, !c.IsZero()
	}
}

// Over returns a layer that yields the first visible layer, in order.
func Over(layers ...Layer) Layer {
	return func(f *Fragment, u *Uniforms) (Color, bool) {
		for _, l := range layers {
			if c, ok := l(f, u); ok {
				return c, true
			}
		}
		return Black, false
	}
}

// Composite turns a layer stack into a Shader. The first visible layer
// wins; if none draws, the result is Black.
func Composite(layers ...Layer) Shader {
	top := Over(layers...)
	return ShaderFunc(func(f *Fragment, u *Uniforms, _ BlendMode) Color {
		c, _ := top(f, u)
		return c
	})
}
