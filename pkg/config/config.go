// Package config loads viewer settings from a JSON file and merges them
// with command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
	"github.com/taigrr/orrery/pkg/shaders"
)

// Output modes.
const (
	OutputWindow   = "window"
	OutputTerminal = "terminal"
	OutputSnapshot = "snapshot"
)

// Defaults used by Resolve.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultFPS        = 60
	DefaultBackground = "#333355"
	DefaultSeed       = 1337
	DefaultSnapshot   = "orrery.webp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// ErrBlendConflict reports a "+mode" shader suffix that disagrees with the
// separately given blend mode.
var ErrBlendConflict = errors.New("shader blend mode conflicts with blend")

// Config holds all viewer settings.
type Config struct {
	// Window
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"`
	Background string `json:"background"`
	Output     string `json:"output"`

	// Scene
	Body   string `json:"body"`
	Shader string `json:"shader"` // "name" or "name+mode"; replaces the body shader
	Blend  string `json:"blend"`
	Seed   *int64 `json:"seed"`
	Guides bool   `json:"guides"`
	Sphere string `json:"sphere"` // mesh file replacing the built-in sphere
	Ring   string `json:"ring"`

	// Snapshot
	Snapshot string `json:"snapshot"`
	Frames   int    `json:"frames"`
	Upscale  int    `json:"upscale"`

	LogLevel string `json:"log_level"`
}

// Flags holds CLI flag values that override config file settings. Zero
// values mean "not set".
type Flags struct {
	Width      int
	Height     int
	FPS        int
	Background string
	Output     string
	Body       string
	Shader     string
	Blend      string
	Seed       *int64
	Guides     bool
	Sphere     string
	Ring       string
	Snapshot   string
	Frames     int
	Upscale    int
	LogLevel   string
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides and fills in defaults.
func (c *Config) Resolve(flags Flags) {
	overrideInt(&c.Width, flags.Width)
	overrideInt(&c.Height, flags.Height)
	overrideInt(&c.FPS, flags.FPS)
	overrideInt(&c.Frames, flags.Frames)
	overrideInt(&c.Upscale, flags.Upscale)
	overrideString(&c.Background, flags.Background)
	overrideString(&c.Output, flags.Output)
	overrideString(&c.Body, flags.Body)
	overrideString(&c.Shader, flags.Shader)
	overrideString(&c.Blend, flags.Blend)
	overrideString(&c.Sphere, flags.Sphere)
	overrideString(&c.Ring, flags.Ring)
	overrideString(&c.Snapshot, flags.Snapshot)
	overrideString(&c.LogLevel, flags.LogLevel)
	if flags.Seed != nil {
		seed := *flags.Seed
		c.Seed = &seed
	}
	if flags.Guides {
		c.Guides = true
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Output == "" {
		c.Output = OutputWindow
	}
	if c.Body == "" {
		c.Body = scene.Star.String()
	}
	if c.Seed == nil {
		seed := int64(DefaultSeed)
		c.Seed = &seed
	}
	if c.Snapshot == "" {
		c.Snapshot = DefaultSnapshot
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Upscale <= 0 {
		c.Upscale = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Settings is a resolved Config with every string parsed into its typed
// value.
type Settings struct {
	Background render.Color
	Body       scene.Body
	Shader     render.Selector
	Blend      render.BlendMode
	LogLevel   log.Level
}

// Parse validates the resolved config and returns its typed settings.
func (c *Config) Parse() (Settings, error) {
	var s Settings
	var err error

	switch c.Output {
	case OutputWindow, OutputTerminal, OutputSnapshot:
	default:
		return s, fmt.Errorf("%w: output %q (want %s, %s or %s)", ErrInvalid, c.Output, OutputWindow, OutputTerminal, OutputSnapshot)
	}
	if s.Background, err = ParseColor(c.Background); err != nil {
		return s, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	if s.Body, err = scene.ParseBody(c.Body); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Blend != "" {
		if s.Blend, err = render.ParseBlendMode(c.Blend); err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if c.Shader != "" {
		if s.Shader, err = parseShader(c.Shader, c.Blend != "", s.Blend); err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if s.LogLevel, err = log.ParseLevel(c.LogLevel); err != nil {
		return s, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return s, nil
}

// parseShader parses a shader selector and checks its name against the
// built-in registry. A selector without a "+mode" suffix takes blend; one
// with a suffix must agree with blend when blend was given.
func parseShader(in string, hasBlend bool, blend render.BlendMode) (render.Selector, error) {
	sel, err := render.ParseSelector(in)
	if err != nil {
		return sel, err
	}
	if _, ok := shaders.Default().Lookup(sel.Name); !ok {
		return sel, fmt.Errorf("%w: %q", render.ErrUnknownShader, sel.Name)
	}
	switch {
	case !strings.Contains(in, "+"):
		sel.Mode = blend
	case hasBlend && sel.Mode != blend:
		return sel, fmt.Errorf("%w: shader %q and blend %q", ErrBlendConflict, in, blend)
	}
	return sel, nil
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or "R,G,B".
func ParseColor(s string) (render.Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return render.Black, fmt.Errorf("color %q: want R,G,B", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return render.Black, fmt.Errorf("color %q: %w", s, err)
			}
			ch[i] = uint8(v)
		}
		return render.RGB(ch[0], ch[1], ch[2]), nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) != 6 {
		return render.Black, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return render.Black, fmt.Errorf("color %q: %w", s, err)
	}
	return render.Hex(uint32(v)), nil
}

func overrideInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
