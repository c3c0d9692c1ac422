package scene

// Key names shared by the presenters. They match the strings ultraviolet
// key events understand, so the terminal can pass them to MatchString.
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyUp     = "up"
	KeyDown   = "down"
	KeyA      = "a"
	KeyD      = "d"
	KeyW      = "w"
	KeyS      = "s"
	KeyQ      = "q"
	KeyE      = "e"
	KeyR      = "r"
	KeyG      = "g"
	KeyEscape = "escape"
)

// Input is the set of controls held during one frame.
type Input struct {
	Left, Right, Up, Down bool // move the body
	YawLeft, YawRight     bool // A / D
	PitchUp, PitchDown    bool // W / S
	ZoomIn, ZoomOut       bool // Q / E
	Reset                 bool
	ToggleGuides          bool
	Select                Body // NoBody keeps the current body
}

// Keys returns every key name Press understands, except Escape which the
// presenters handle themselves.
func Keys() []string {
	return []string{
		KeyLeft, KeyRight, KeyUp, KeyDown,
		KeyA, KeyD, KeyW, KeyS, KeyQ, KeyE,
		KeyR, KeyG,
		"1", "2", "3", "4", "5", "6", "7", "8",
	}
}

// Press marks key as held. It reports whether the key is bound.
func (in *Input) Press(key string) bool {
	switch key {
	case KeyLeft:
		in.Left = true
	case KeyRight:
		in.Right = true
	case KeyUp:
		in.Up = true
	case KeyDown:
		in.Down = true
	case KeyA:
		in.YawLeft = true
	case KeyD:
		in.YawRight = true
	case KeyW:
		in.PitchUp = true
	case KeyS:
		in.PitchDown = true
	case KeyQ:
		in.ZoomIn = true
	case KeyE:
		in.ZoomOut = true
	case KeyR:
		in.Reset = true
	case KeyG:
		in.ToggleGuides = true
	default:
		if len(key) != 1 {
			return false
		}
		b, ok := BodyForKey(rune(key[0]))
		if !ok {
			return false
		}
		in.Select = b
	}
	return true
}
