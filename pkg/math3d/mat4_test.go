package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestViewport(t *testing.T) {
	vp := Viewport(0, 0, 800, 600)

	tests := []struct {
		name     string
		ndc      Vec3
		expected Vec3
	}{
		{"center", V3(0, 0, 0.5), V3(400, 300, 0.5)},
		{"top left", V3(-1, 1, 0), V3(0, 0, 0)},
		{"bottom right", V3(1, -1, -1), V3(800, 600, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vp.MulVec3(tc.ndc)
			if !vecNear(got, tc.expected, 1e-9) {
				t.Errorf("Viewport * %v = %v, want %v", tc.ndc, got, tc.expected)
			}
		})
	}
}

func TestModelOrder(t *testing.T) {
	// Rotate a quarter turn about Z, scale by 2, then move right by 10.
	m := Model(V3(10, 0, 0), 2, V3(0, 0, math.Pi/2))
	got := m.MulVec3(V3(1, 0, 0))
	want := V3(10, 2, 0)
	if !vecNear(got, want, 1e-9) {
		t.Errorf("Model * (1,0,0) = %v, want %v", got, want)
	}
}

func TestModelRotationOrder(t *testing.T) {
	// X first, then Y: (0,1,0) -> X(90) -> (0,0,1) -> Y(90) -> (1,0,0)
	m := Model(Zero3(), 1, V3(math.Pi/2, math.Pi/2, 0))
	got := m.MulVec3(V3(0, 1, 0))
	want := V3(1, 0, 0)
	if !vecNear(got, want, 1e-9) {
		t.Errorf("Model rotation = %v, want %v", got, want)
	}
}

func TestPerspectiveDepthOrder(t *testing.T) {
	p := Perspective(math.Pi/3, 1, 0.1, 100)
	near := p.MulVec4(V4(0, 0, -1, 1)).PerspectiveDivide()
	far := p.MulVec4(V4(0, 0, -50, 1)).PerspectiveDivide()
	if near.Z >= far.Z {
		t.Errorf("nearer point should have smaller NDC z: near=%v far=%v", near.Z, far.Z)
	}
}

func TestSafeW(t *testing.T) {
	tests := []struct {
		name string
		w    float64
		want float64
	}{
		{"regular", 2, 2},
		{"negative", -3, -3},
		{"zero", 0, MinW},
		{"tiny positive", 1e-12, MinW},
		{"tiny negative", -1e-12, -MinW},
		{"nan", math.NaN(), MinW},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := V4(1, 1, 1, tc.w).SafeW(); got != tc.want {
				t.Errorf("SafeW(%v) = %v, want %v", tc.w, got, tc.want)
			}
		})
	}
}

func TestPerspectiveDivideFinite(t *testing.T) {
	v := V4(3, -2, 1, 0).PerspectiveDivide()
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Fatalf("divide by zero w produced non-finite component: %v", v)
		}
	}
}

func TestVec2Cross(t *testing.T) {
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := V2(0, 1).Cross(V2(1, 0)); got != -1 {
		t.Errorf("Cross = %v, want -1", got)
	}
	if !V2(1, 2).IsFinite() || V2(math.Inf(1), 0).IsFinite() {
		t.Error("IsFinite misclassified")
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	r := Model(Zero3(), 1, V3(0.3, -1.1, 2.0))
	got := r.Transpose().Mul(r)
	want := Identity()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("R^T R = %v, want identity", got)
		}
	}
	if r.Transpose().Get(0, 1) != r.Get(1, 0) {
		t.Error("Transpose did not swap (0,1) and (1,0)")
	}
}
