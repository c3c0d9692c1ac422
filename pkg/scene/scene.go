// Package scene holds the planetary scene: which body is shown, how input
// moves it, and how the body, its rings and its moon are drawn each frame.
package scene

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/shaders"
)

// Motion and layout tuning, in world units and radians per frame.
const (
	MoveSpeed     = 0.05
	RotateImpulse = 0.02
	ZoomStep      = 1.02
	MinScale      = 0.2
	MaxScale      = 4.0 // the unit body stays in front of the camera

	RingScale = 1.2
	RingTilt  = 0.35
	MoonOrbit = 1.5
	MoonScale = 0.3
	MoonSpeed = 0.02

	CameraDistance = 4.5
	CameraPitch    = 0.25
)

// DefaultLight is the world-space direction towards the light.
var DefaultLight = math3d.V3(-0.5, 0.4, 0.75).Normalize()

var guideColor = render.RGB(255, 255, 0)

// Transform places a body in the world.
type Transform struct {
	Translation math3d.Vec3
	Rotation    math3d.Vec3 // Euler angles, applied X then Y then Z
	Scale       float64
}

// Matrix returns the model matrix T * S * Rz * Ry * Rx.
func (t Transform) Matrix() math3d.Mat4 {
	return math3d.Model(t.Translation, t.Scale, t.Rotation)
}

// Options configures a new Scene. Zero values pick defaults.
type Options struct {
	FPS    int
	Body   Body
	Shader render.Selector // replaces the body's own shader when Name is set
	Blend  render.BlendMode
	Guides bool
	Width  int
	Height int

	Sphere render.BoundedMesh
	Ring   render.BoundedMesh
}

// Scene is the state of the planetary viewer between frames. It is not
// safe for concurrent use; the frame loop owns it.
type Scene struct {
	Body        Body
	Translation math3d.Vec3
	Motion      *Motion
	Zoom        Zoom
	Camera      *render.Camera
	Light       math3d.Vec3
	Shader      render.Selector
	Blend       render.BlendMode
	Guides      bool
	Frame       uint32

	sphere render.BoundedMesh
	ring   render.BoundedMesh
}

// New creates a scene with the body centered at the origin.
func New(opts Options) *Scene {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if !opts.Body.Valid() {
		opts.Body = Star
	}
	if opts.Sphere == nil {
		opts.Sphere = models.UVSphere(24, 48)
	}
	if opts.Ring == nil {
		opts.Ring = models.Ring(1.2, 1.8, 96)
	}

	s := &Scene{
		Body:   opts.Body,
		Motion: NewMotion(opts.FPS),
		Zoom:   NewZoom(opts.FPS, 1, MinScale, MaxScale),
		Camera: render.NewCamera(CameraDistance, 4.0/3.0),
		Light:  DefaultLight,
		Shader: opts.Shader,
		Blend:  opts.Blend,
		Guides: opts.Guides,
		sphere: opts.Sphere,
		ring:   opts.Ring,
	}
	s.Camera.Pitch = CameraPitch
	s.Resize(opts.Width, opts.Height)
	return s
}

// Resize matches the camera aspect ratio to a width x height target.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.AspectRatio = float64(width) / float64(height)
}

// Step applies one frame of input and advances time.
func (s *Scene) Step(in Input) {
	if in.Select.Valid() {
		s.Body = in.Select
	}
	if in.Reset {
		s.Translation = math3d.Zero3()
		s.Motion.Reset()
		s.Zoom.Target = 1
	}
	if in.ToggleGuides {
		s.Guides = !s.Guides
	}

	var move math3d.Vec3
	if in.Left {
		move.X -= MoveSpeed
	}
	if in.Right {
		move.X += MoveSpeed
	}
	if in.Up {
		move.Y += MoveSpeed
	}
	if in.Down {
		move.Y -= MoveSpeed
	}
	s.Translation = s.Translation.Add(move)

	var pitch, yaw float64
	if in.YawLeft {
		yaw += RotateImpulse
	}
	if in.YawRight {
		yaw -= RotateImpulse
	}
	if in.PitchUp {
		pitch += RotateImpulse
	}
	if in.PitchDown {
		pitch -= RotateImpulse
	}
	s.Motion.ApplyImpulse(pitch, yaw, 0)

	if in.ZoomIn {
		s.Zoom.Scale(ZoomStep)
	}
	if in.ZoomOut {
		s.Zoom.Scale(1 / ZoomStep)
	}

	s.Motion.Update()
	s.Zoom.Update()
	s.Frame++
}

// Transform returns the current placement of the main body.
func (s *Scene) Transform() Transform {
	return Transform{
		Translation: s.Translation,
		Rotation:    s.Motion.Rotation(),
		Scale:       s.Zoom.Value,
	}
}

// MoonAngle returns the moon's orbital angle at the current frame.
func (s *Scene) MoonAngle() float64 {
	return float64(s.Frame) * MoonSpeed
}

// MoonPosition returns the moon's world position. It circles the body in
// the XZ plane so it passes behind it.
func (s *Scene) MoonPosition() math3d.Vec3 {
	a := s.MoonAngle()
	r := MoonOrbit * s.Zoom.Value
	return s.Translation.Add(math3d.V3(r*math.Cos(a), 0, r*math.Sin(a)))
}

// Selector returns the selector the main body is drawn with.
func (s *Scene) Selector() render.Selector {
	sel := s.Shader
	if sel.Name == "" {
		sel.Name = s.Body.Shader()
	}
	if sel.Mode == render.BlendNormal {
		sel.Mode = s.Blend
	}
	return sel
}

// Draw renders the scene into fb. It sets the viewport, camera matrices
// and time on u, then overwrites u.Model and u.Light per mesh.
func (s *Scene) Draw(r *render.Renderer, fb *render.Framebuffer, u *render.Uniforms) {
	u.Viewport = math3d.Viewport(0, 0, float64(fb.Width), float64(fb.Height))
	s.Camera.Apply(u)
	u.Time = s.Frame

	body := s.Transform()
	s.draw(r, fb, u, s.sphere, body, s.Body.Color(), s.Selector())

	if s.Body.HasRings() {
		ring := body
		ring.Scale *= RingScale
		ring.Rotation = ring.Rotation.Add(math3d.V3(RingTilt, 0, 0))
		s.draw(r, fb, u, s.ring, ring, RingColor, render.Selector{Name: shaders.Ring, Mode: s.Blend})
	}

	if s.Body.HasMoon() {
		moon := Transform{Translation: s.MoonPosition(), Scale: body.Scale * MoonScale}
		s.draw(r, fb, u, s.sphere, moon, MoonColor, render.Selector{Name: shaders.Moon, Mode: s.Blend})
	}

	if s.Guides {
		s.drawGuides(fb, u, body)
	}
}

func (s *Scene) draw(r *render.Renderer, fb *render.Framebuffer, u *render.Uniforms, mesh render.Mesh, t Transform, c render.Color, sel render.Selector) {
	fb.SetCurrentColor(c)
	u.Model = t.Matrix()
	// Shaders light in model space; undo the rotation on the world light.
	rot := math3d.Model(math3d.Zero3(), 1, t.Rotation)
	u.Light = rot.Transpose().MulVec3Dir(s.Light)
	r.DrawMesh(fb, u, mesh, sel)
}

func (s *Scene) drawGuides(fb *render.Framebuffer, u *render.Uniforms, body Transform) {
	g := render.NewGuides(fb, u)

	u.Model = body.Matrix()
	g.Axes(1.5)
	lo, hi := s.sphere.GetBounds()
	g.Box(render.NewAABB(lo, hi), guideColor)

	if s.Body.HasMoon() {
		u.Model = math3d.Model(body.Translation, body.Scale, math3d.Zero3())
		g.Circle(math3d.Zero3(), MoonOrbit, 64, guideColor)
	}
}
