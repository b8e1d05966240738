package confirm

import "golang.org/x/sys/unix"

// flushInput drops bytes received but not yet read on the terminal fd.
func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}
