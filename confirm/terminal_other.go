//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package confirm

// flushInput is not supported here; typed-ahead keys are kept.
func flushInput(fd int) error {
	return nil
}
