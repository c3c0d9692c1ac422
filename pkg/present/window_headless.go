//go:build headless

package present

import "errors"

// ErrNoWindow is returned by RunWindow in builds without a window system.
var ErrNoWindow = errors.New("built without window support")

// RunWindow always fails in headless builds; use the terminal or snapshot
// output instead.
func RunWindow(_ *Viewer, _ string, _, _ int) error {
	return ErrNoWindow
}
