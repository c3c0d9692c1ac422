package render

import (
	"errors"
	"fmt"
	"strings"
)

// BlendMode names a per-channel operator that layers one color over
// another.
type BlendMode int

const (
	// BlendNormal lets the top color replace the base, except that a pure
	// black top is treated as transparent and the base shows through.
	BlendNormal BlendMode = iota
	// BlendMultiply darkens: a*b/255.
	BlendMultiply
	// BlendAdd is the saturating sum.
	BlendAdd
	// BlendSubtract is the saturating difference base - top.
	BlendSubtract
	// BlendScreen lightens: 255 - (255-a)*(255-b)/255.
	BlendScreen
)

// ErrUnknownBlendMode is returned by ParseBlendMode for unrecognized names.
var ErrUnknownBlendMode = errors.New("unknown blend mode")

var blendNames = [...]string{
	BlendNormal:   "normal",
	BlendMultiply: "multiply",
	BlendAdd:      "add",
	BlendSubtract: "subtract",
	BlendScreen:   "screen",
}

// BlendModes returns every blend mode in declaration order.
func BlendModes() []BlendMode {
	return []BlendMode{BlendNormal, BlendMultiply, BlendAdd, BlendSubtract, BlendScreen}
}

func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendNames) {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendNames[m]
}

// ParseBlendMode resolves a blend mode by name, case-insensitively.
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// Blend layers top over c using mode. Unknown modes behave like
// BlendNormal.
func (c Color) Blend(top Color, mode BlendMode) Color {
	switch mode {
	case BlendMultiply:
		return Color{
			R: multiplyChannel(c.R, top.R),
			G: multiplyChannel(c.G, top.G),
			B: multiplyChannel(c.B, top.B),
		}
	case BlendAdd:
		return c.Add(top)
	case BlendSubtract:
		return c.Sub(top)
	case BlendScreen:
		return Color{
			R: screenChannel(c.R, top.R),
			G: screenChannel(c.G, top.G),
			B: screenChannel(c.B, top.B),
		}
	default:
		if top.IsZero() {
			return c
		}
		return top
	}
}

func multiplyChannel(a, b uint8) uint8 {
	return uint8(int(a) * int(b) / 255)
}

func screenChannel(a, b uint8) uint8 {
	return uint8(255 - (255-int(a))*(255-int(b))/255)
}
