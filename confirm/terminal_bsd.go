//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package confirm

import "golang.org/x/sys/unix"

// flushInput drops bytes received but not yet read on the terminal fd by
// re-applying the current settings with TIOCSETAF.
func flushInput(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		return err
	}
	return unix.IoctlSetTermios(fd, unix.TIOCSETAF, termios)
}
