//go:build !ebiten

package gui

// Run always fails in the headless build.
func Run(Options) error {
	return ErrUnavailable
}
