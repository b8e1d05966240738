package confirm

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Auto returns a TerminalWaiter on stdin when stdin is a terminal and a
// SignalWaiter otherwise.
func Auto() Waiter {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if w, err := NewTerminalWaiter(os.Stdin); err == nil {
			return w
		}
	}
	return NewSignalWaiter()
}
