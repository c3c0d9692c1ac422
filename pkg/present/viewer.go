// Package present drives the planetary scene frame by frame and shows the
// result: in a desktop window, in the terminal, or as an image file.
package present

import (
	"github.com/charmbracelet/log"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
)

// statsEvery is how often, in frames, the viewer logs pipeline stats.
const statsEvery = 60

// Viewer ties a scene to a renderer and a framebuffer. Presenters decide
// where input comes from and where pixels go; the Viewer does the rest.
// It is owned by a single frame loop.
type Viewer struct {
	Scene    *scene.Scene
	Renderer *render.Renderer
	FB       *render.Framebuffer
	Uniforms *render.Uniforms
	Logger   *log.Logger
}

// NewViewer creates a viewer for sc. A nil logger uses the default one.
func NewViewer(sc *scene.Scene, r *render.Renderer, u *render.Uniforms, fb *render.Framebuffer, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.Default()
	}
	sc.Resize(fb.Width, fb.Height)
	return &Viewer{Scene: sc, Renderer: r, FB: fb, Uniforms: u, Logger: logger}
}

// Resize reallocates the framebuffer and matches the camera to it.
func (v *Viewer) Resize(width, height int) {
	if width == v.FB.Width && height == v.FB.Height {
		return
	}
	v.FB.Resize(width, height)
	v.Scene.Resize(width, height)
	v.Logger.Debug("resize", "width", width, "height", height)
}

// Step applies one frame of input and renders the result.
func (v *Viewer) Step(in scene.Input) {
	prev := v.Scene.Body
	v.Scene.Step(in)
	if v.Scene.Body != prev {
		v.Logger.Info("body", "name", v.Scene.Body, "shader", v.Scene.Selector())
	}
	v.Render()
}

// Render clears the framebuffer and draws the scene as it is.
func (v *Viewer) Render() {
	v.FB.Clear()
	v.Renderer.ResetStats()
	v.Scene.Draw(v.Renderer, v.FB, v.Uniforms)

	if v.Scene.Frame%statsEvery == 0 {
		st := v.Renderer.Stats
		v.Logger.Debug("frame",
			"n", v.Scene.Frame,
			"triangles", st.Triangles,
			"behind", st.Behind,
			"clipped", st.Clipped,
			"degenerate", st.Degenerate,
			"fragments", st.Fragments,
			"written", st.Written,
			"culled", st.MeshesCulled,
		)
	}
}
