package render

import (
	"testing"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetBackground(Hex(0x333355))
	fb.Commit(1, 1, 0.5, White)
	fb.Clear()

	first := append([]uint32(nil), fb.Buffer()...)
	fb.Clear()
	for i, p := range fb.Buffer() {
		if p != 0x333355 || p != first[i] {
			t.Fatalf("pixel %d = %#x after double clear", i, p)
		}
	}
	for y := range fb.Height {
		for x := range fb.Width {
			if d := fb.Depth(x, y); d != FarDepth {
				t.Fatalf("depth(%d, %d) = %v, want FarDepth", x, y, d)
			}
		}
	}
}

func TestFramebufferNearestWins(t *testing.T) {
	near, far := RGB(255, 0, 0), RGB(0, 0, 255)

	orders := map[string][]struct {
		depth float64
		c     Color
	}{
		"near first": {{0.2, near}, {0.8, far}},
		"far first":  {{0.8, far}, {0.2, near}},
	}

	for name, writes := range orders {
		t.Run(name, func(t *testing.T) {
			fb := NewFramebuffer(2, 2)
			for _, w := range writes {
				fb.Commit(1, 0, w.depth, w.c)
			}
			if got := fb.Pixel(1, 0); got != near {
				t.Errorf("pixel = %v, want %v", got, near)
			}
			if got := fb.Depth(1, 0); got != 0.2 {
				t.Errorf("depth = %v, want 0.2", got)
			}
		})
	}
}

func TestFramebufferCommitEqualDepth(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	if !fb.Commit(0, 0, 0.5, White) {
		t.Fatal("first commit rejected")
	}
	if fb.Commit(0, 0, 0.5, RGB(1, 2, 3)) {
		t.Error("equal depth should not overwrite")
	}
	if fb.Pixel(0, 0) != White {
		t.Errorf("pixel = %v, want white", fb.Pixel(0, 0))
	}
}

func TestFramebufferOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if fb.Commit(p[0], p[1], 0, White) {
			t.Errorf("Commit(%d, %d) accepted", p[0], p[1])
		}
		if fb.Pixel(p[0], p[1]) != Black || fb.Depth(p[0], p[1]) != FarDepth {
			t.Errorf("out-of-bounds read at %v", p)
		}
	}
}

func TestFramebufferPointUsesCurrentColor(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetCurrentColor(Hex(0xFFDDDD))
	fb.Point(1, 1, 0)
	if got := fb.Pixel(1, 1); got != Hex(0xFFDDDD) {
		t.Errorf("pixel = %v", got)
	}
	if fb.CurrentColor() != Hex(0xFFDDDD) {
		t.Error("current color not kept")
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Resize(5, 4)
	if len(fb.Buffer()) != 20 {
		t.Errorf("buffer len = %d, want 20", len(fb.Buffer()))
	}
	fb.Resize(-1, 4)
	if fb.Width != 0 || len(fb.Buffer()) != 0 {
		t.Errorf("negative resize left %dx%d", fb.Width, fb.Height)
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Commit(1, 0, 0, RGB(10, 20, 30))
	img := fb.ToImage()
	if got := img.RGBAAt(1, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 255 || got.R != 0 {
		t.Errorf("background pixel = %v", got)
	}
}

func BenchmarkFramebufferClear(b *testing.B) {
	fb := NewFramebuffer(800, 600)
	fb.SetBackground(Hex(0x333355))

	for b.Loop() {
		fb.Clear()
	}
}
