package scene

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Axis tracks the angle and angular velocity of one rotation axis. Input
// adds velocity; a critically damped spring bleeds it back to zero so the
// body coasts to a stop.
type Axis struct {
	Position float64
	Velocity float64

	spring harmonica.Spring
	accel  float64 // spring velocity of Velocity itself
}

// NewAxis creates an axis whose velocity decays at the given frame rate.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 4, damping 1: no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by one frame and decays the velocity.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Motion is the spring-smoothed rotation of a body around its own X
// (pitch), Y (yaw) and Z (roll) axes.
type Motion struct {
	Pitch, Yaw, Roll Axis
	fps              int
}

// NewMotion creates a body at rest.
func NewMotion(fps int) *Motion {
	return &Motion{
		Pitch: NewAxis(fps),
		Yaw:   NewAxis(fps),
		Roll:  NewAxis(fps),
		fps:   fps,
	}
}

// Update advances every axis by one frame.
func (m *Motion) Update() {
	m.Pitch.Update()
	m.Yaw.Update()
	m.Roll.Update()
}

// ApplyImpulse adds angular velocity in radians per frame.
func (m *Motion) ApplyImpulse(pitch, yaw, roll float64) {
	m.Pitch.Velocity += pitch
	m.Yaw.Velocity += yaw
	m.Roll.Velocity += roll
}

// Rotation returns the current Euler angles as a rotation vector for
// math3d.Model.
func (m *Motion) Rotation() math3d.Vec3 {
	return math3d.V3(m.Pitch.Position, m.Yaw.Position, m.Roll.Position)
}

// Reset stops the body and returns it to its initial orientation.
func (m *Motion) Reset() {
	m.Pitch = NewAxis(m.fps)
	m.Yaw = NewAxis(m.fps)
	m.Roll = NewAxis(m.fps)
}

// Zoom eases a scale factor towards a target.
type Zoom struct {
	Value  float64
	Target float64
	Min    float64
	Max    float64

	spring   harmonica.Spring
	velocity float64
}

// NewZoom creates a zoom resting at value, clamped to [lo, hi].
func NewZoom(fps int, value, lo, hi float64) Zoom {
	value = max(lo, min(hi, value))
	return Zoom{
		Value:  value,
		Target: value,
		Min:    lo,
		Max:    hi,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Scale multiplies the target by factor, keeping it within bounds.
func (z *Zoom) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	z.Target = max(z.Min, min(z.Max, z.Target*factor))
}

// Update moves Value one frame closer to Target.
func (z *Zoom) Update() {
	z.Value, z.velocity = z.spring.Update(z.Value, z.velocity, z.Target)
}

// Settle jumps straight to the target.
func (z *Zoom) Settle() {
	z.Value, z.velocity = z.Target, 0
}
