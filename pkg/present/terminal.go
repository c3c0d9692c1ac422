package present

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/scene"
)

// terminalInput merges one key press into in. match reports whether the
// pressed key equals any of the given key names. It returns true when the
// key asks to quit.
func terminalInput(in *scene.Input, match func(keys ...string) bool) (quit bool) {
	if match(scene.KeyEscape, "ctrl+c") {
		return true
	}
	for _, k := range scene.Keys() {
		if match(k) {
			in.Press(k)
		}
	}
	return false
}

// RunTerminal renders the viewer into the terminal with half-block cells,
// two framebuffer rows per terminal row, until ctx is done or Escape is
// pressed.
func RunTerminal(ctx context.Context, v *Viewer, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	v.Resize(width, height*2)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			v.Logger.Warn("terminal shutdown", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are read on their own goroutine; the framebuffer is only
	// touched by the loop below.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	targetDuration := time.Second / time.Duration(max(fps, 1))
	for {
		now := time.Now()

		var in scene.Input
	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					v.Resize(width, height*2)
				case uv.KeyPressEvent:
					if terminalInput(&in, ev.MatchString) {
						return nil
					}
				}
			default:
				break drain
			}
		}

		v.Step(in)
		v.FB.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
