package confirm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a terminal waiter is requested for a
// file that is not a terminal
var ErrNotTerminal = errors.New("not a terminal")

// Control keys read by TerminalWaiter
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyCtrlE = 0x05
)

// TerminalWaiter reads control keys from a terminal in raw mode
type TerminalWaiter struct {
	in *os.File
}

var _ Waiter = (*TerminalWaiter)(nil)

// NewTerminalWaiter creates a waiter reading from in, which must be a
// terminal.
func NewTerminalWaiter(in *os.File) (*TerminalWaiter, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	return &TerminalWaiter{in: in}, nil
}

// Clear discards keys typed before the prompt. Without it a control
// byte left in the input queue would answer the prompt once Wait
// switches to raw mode.
func (w *TerminalWaiter) Clear() {
	_ = flushInput(int(w.in.Fd()))
}

// Wait puts the terminal in raw mode and reads until ^C, ^D or ^E. A
// read failure is treated as continue so a lost terminal never wedges
// the caller.
func (w *TerminalWaiter) Wait() Signal {
	fd := int(w.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return SignalContinue
	}
	defer term.Restore(fd, oldState)

	return readKeys(w.in)
}

// keySignal maps a control key to its signal
func keySignal(b byte) Signal {
	switch b {
	case keyCtrlC:
		return SignalContinue
	case keyCtrlD:
		return SignalScroll
	case keyCtrlE:
		return SignalBatch
	default:
		return 0
	}
}

// readKeys consumes bytes until one maps to a signal.
func readKeys(r io.Reader) Signal {
	var buf [16]byte
	for {
		n, err := r.Read(buf[:])
		var s Signal
		for _, b := range buf[:n] {
			s |= keySignal(b)
		}
		if s != 0 {
			return s
		}
		if err != nil {
			return SignalContinue
		}
	}
}
