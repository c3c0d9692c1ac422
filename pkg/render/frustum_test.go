package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.DistanceToPoint(tc.point); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if l := plane.Normal.Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("normal length = %v, want 1", l)
	}
	if math.Abs(plane.D-2) > 1e-9 {
		t.Errorf("D = %v, want 2", plane.D)
	}

	zero := Plane{D: 3}
	zero.Normalize()
	if zero.D != 3 {
		t.Errorf("zero-normal plane changed: %+v", zero)
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		got := box.Transform(math3d.Translate(math3d.V3(10, 20, 30)))
		if got.Min != math3d.V3(9, 19, 29) || got.Max != math3d.V3(11, 21, 31) {
			t.Errorf("translated = %+v", got)
		}
	})

	t.Run("scale", func(t *testing.T) {
		got := box.Transform(math3d.ScaleUniform(2))
		if got.Min != math3d.V3(-2, -2, -2) || got.Max != math3d.V3(2, 2, 2) {
			t.Errorf("scaled = %+v", got)
		}
	})

	t.Run("rotation grows the box", func(t *testing.T) {
		got := box.Transform(math3d.RotateY(math.Pi / 4))
		want := math.Sqrt2
		if math.Abs(got.Max.X-want) > 1e-9 || math.Abs(got.Min.Z+want) > 1e-9 {
			t.Errorf("rotated = %+v, want half-width %v", got, want)
		}
	})
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3(0, 0, 0), math3d.V3(10, 10, 10))

	if !box.ContainsPoint(math3d.V3(10, 0, 5)) {
		t.Error("boundary point should be inside")
	}
	if box.ContainsPoint(math3d.V3(5, 5, 15)) {
		t.Error("point beyond max Z should be outside")
	}
	if c := box.Center(); c != math3d.V3(5, 5, 5) {
		t.Errorf("center = %v", c)
	}
}

func TestExtractFrustumNormalized(t *testing.T) {
	f := ExtractFrustum(math3d.Perspective(math.Pi/3, 16.0/9.0, 0.1, 100))
	for i, plane := range f.Planes {
		if l := plane.Normal.Len(); math.Abs(l-1) > 1e-6 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := ExtractFrustum(math3d.Perspective(math.Pi/3, 16.0/9.0, 0.1, 100))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center near", math3d.V3(0, 0, -1), true},
		{"center far", math3d.V3(0, 0, -99), true},
		{"behind camera", math3d.V3(0, 0, 1), false},
		{"too far", math3d.V3(0, 0, -200), false},
		{"too close", math3d.V3(0, 0, -0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.ContainsPoint(tc.point); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	f := ExtractFrustum(math3d.Perspective(math.Pi/3, 16.0/9.0, 1, 100))

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{"fully inside", NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5)), true},
		{"crossing near plane", NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2)), true},
		{"behind camera", NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 10)), false},
		{"beyond far plane", NewAABB(math3d.V3(-1, -1, -150), math3d.V3(1, 1, -120)), false},
		{"far to the right", NewAABB(math3d.V3(100, -1, -10), math3d.V3(110, 1, -5)), false},
		{"enclosing frustum", NewAABB(math3d.V3(-200, -200, -200), math3d.V3(200, 200, 200)), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectAABB(tc.box); got != tc.expected {
				t.Errorf("IntersectAABB(%+v) = %v, want %v", tc.box, got, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := ExtractFrustum(math3d.Perspective(math.Pi/3, 16.0/9.0, 1, 100))

	if !f.IntersectsSphere(math3d.V3(0, 0, -10), 1) {
		t.Error("sphere in front should intersect")
	}
	if !f.IntersectsSphere(math3d.V3(0, 0, -0.5), 1) {
		t.Error("sphere straddling the near plane should intersect")
	}
	if f.IntersectsSphere(math3d.V3(0, 0, 5), 1) {
		t.Error("sphere behind the camera should not intersect")
	}
}

func TestCameraFrustumFollowsOrbit(t *testing.T) {
	cam := NewCamera(10, 1)
	if !cam.Frustum().ContainsPoint(math3d.Zero3()) {
		t.Fatal("target should be visible")
	}

	cam.Orbit(math.Pi/2, 0)
	if eye := cam.Eye(); math.Abs(eye.X-10) > 1e-9 || math.Abs(eye.Z) > 1e-9 {
		t.Errorf("eye after quarter orbit = %v, want (10, 0, 0)", eye)
	}
	if cam.Frustum().ContainsPoint(math3d.V3(20, 0, 0)) {
		t.Error("point behind the orbited eye should not be visible")
	}
}

func TestCameraOrbitClampsPitch(t *testing.T) {
	cam := NewCamera(5, 1)
	cam.Orbit(0, 10)
	if cam.Pitch != maxPitch {
		t.Errorf("pitch = %v, want %v", cam.Pitch, maxPitch)
	}
	cam.Orbit(0, -20)
	if cam.Pitch != -maxPitch {
		t.Errorf("pitch = %v, want %v", cam.Pitch, -maxPitch)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(5, 1)
	cam.Zoom(0.5)
	if cam.Distance != 2.5 {
		t.Errorf("distance = %v, want 2.5", cam.Distance)
	}
	cam.Zoom(0)
	if cam.Distance != 2.5 {
		t.Errorf("non-positive factor changed distance to %v", cam.Distance)
	}
	cam.Zoom(1e-9)
	if cam.Distance != cam.Near*2 {
		t.Errorf("distance = %v, want floor %v", cam.Distance, cam.Near*2)
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera(5, 1)
	cam.Pan(1, 2)
	if got := cam.Target; math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-2) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("target = %v, want (1, 2, 0)", got)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera(5, 1)

	x, y, depth, ok := cam.WorldToScreen(math3d.Zero3(), 100, 100)
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(x-50) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("screen = (%v, %v), want (50, 50)", x, y)
	}
	if depth <= -1 || depth >= 1 {
		t.Errorf("depth = %v, want inside (-1, 1)", depth)
	}

	if _, _, _, ok := cam.WorldToScreen(math3d.V3(0, 0, 10), 100, 100); ok {
		t.Error("point behind the camera should not be visible")
	}
}

func TestCameraApply(t *testing.T) {
	cam := NewCamera(5, 4.0/3.0)
	u := NewUniforms()
	cam.Apply(u)
	if u.View != cam.ViewMatrix() || u.Projection != cam.ProjectionMatrix() {
		t.Error("Apply did not copy camera matrices")
	}
}

func BenchmarkFrustumCull(b *testing.B) {
	cam := NewCamera(4.5, 4.0/3.0)
	vp := cam.ProjectionMatrix().Mul(cam.ViewMatrix())
	body := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	model := math3d.Model(math3d.V3(1.5, 0, 0), 0.3, math3d.V3(0.2, 0.4, 0))

	b.Run("extract", func(b *testing.B) {
		for b.Loop() {
			_ = ExtractFrustum(vp)
		}
	})
	b.Run("transform+intersect", func(b *testing.B) {
		f := ExtractFrustum(vp)
		for b.Loop() {
			_ = f.IntersectAABB(body.Transform(model))
		}
	})
}
