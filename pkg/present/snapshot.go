package present

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/taigrr/orrery/pkg/scene"
	"golang.org/x/image/draw"
)

// ErrUnsupportedImage is returned for output paths that are neither .webp
// nor .png.
var ErrUnsupportedImage = errors.New("unsupported image format")

// SnapshotOptions controls a headless render.
type SnapshotOptions struct {
	Path    string
	Frames  int // frames to advance before capturing; at least 1
	Upscale int // integer pixel scale of the written image
}

// Snapshot advances the viewer by Frames frames without input and writes
// the last one to Path.
func Snapshot(v *Viewer, opts SnapshotOptions) error {
	format, err := imageFormat(opts.Path)
	if err != nil {
		return err
	}

	for range max(opts.Frames, 1) {
		v.Step(scene.Input{})
	}
	img := Upscale(v.FB.ToImage(), opts.Upscale)

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", opts.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	v.Logger.Info("snapshot written", "path", opts.Path, "frame", v.Scene.Frame,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// Upscale enlarges img by an integer factor with nearest-neighbor
// sampling, keeping the pixels crisp. Factors below 2 return img as is.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img as "webp" (lossless) or "png".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedImage, format)
	}
	return nil
}

func imageFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		return "webp", nil
	case ".png":
		return "png", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
}
