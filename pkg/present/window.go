//go:build !headless

package present

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/orrery/pkg/scene"
)

// keyBinding maps a physical key to a scene key name. Held bindings act
// every frame the key is down; the others fire once per press.
type keyBinding struct {
	key  ebiten.Key
	name string
	held bool
}

var windowKeys = []keyBinding{
	{ebiten.KeyArrowLeft, scene.KeyLeft, true},
	{ebiten.KeyArrowRight, scene.KeyRight, true},
	{ebiten.KeyArrowUp, scene.KeyUp, true},
	{ebiten.KeyArrowDown, scene.KeyDown, true},
	{ebiten.KeyA, scene.KeyA, true},
	{ebiten.KeyD, scene.KeyD, true},
	{ebiten.KeyW, scene.KeyW, true},
	{ebiten.KeyS, scene.KeyS, true},
	{ebiten.KeyQ, scene.KeyQ, true},
	{ebiten.KeyE, scene.KeyE, true},
	{ebiten.KeyR, scene.KeyR, false},
	{ebiten.KeyG, scene.KeyG, false},
	{ebiten.KeyDigit1, "1", false},
	{ebiten.KeyDigit2, "2", false},
	{ebiten.KeyDigit3, "3", false},
	{ebiten.KeyDigit4, "4", false},
	{ebiten.KeyDigit5, "5", false},
	{ebiten.KeyDigit6, "6", false},
	{ebiten.KeyDigit7, "7", false},
	{ebiten.KeyDigit8, "8", false},
}

// windowInput collects one frame of input from key state queries.
func windowInput(pressed, justPressed func(ebiten.Key) bool) scene.Input {
	var in scene.Input
	for _, b := range windowKeys {
		if (b.held && pressed(b.key)) || (!b.held && justPressed(b.key)) {
			in.Press(b.name)
		}
	}
	return in
}

// Window shows the viewer in a desktop window. Ebiten calls Update at the
// configured tick rate and Draw once per display refresh.
type Window struct {
	v      *Viewer
	img    *ebiten.Image
	pixels []byte
}

// RunWindow opens a window and runs the frame loop until Escape is
// pressed or the window is closed.
func RunWindow(v *Viewer, title string, fps, scale int) error {
	w := &Window{v: v}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.FB.Width*max(scale, 1), v.FB.Height*max(scale, 1))
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(fps)
	v.Logger.Info("window", "width", v.FB.Width, "height", v.FB.Height, "tps", fps)
	return ebiten.RunGame(w)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.v.Step(windowInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	fb := w.v.FB
	if w.img == nil || w.img.Bounds().Dx() != fb.Width || w.img.Bounds().Dy() != fb.Height {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(fb.Width, fb.Height)
		w.pixels = make([]byte, fb.Width*fb.Height*4)
	}
	fb.WriteRGBA(w.pixels)
	w.img.WritePixels(w.pixels)
	screen.DrawImage(w.img, nil)
}

// Layout implements ebiten.Game. The framebuffer keeps its size and
// ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.v.FB.Width, w.v.FB.Height
}
