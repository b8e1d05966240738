package confirm

import (
	"strings"
)

// Signal is a set of operator signals
type Signal uint8

const (
	// SignalContinue resumes after a failed assertion
	SignalContinue Signal = 1 << iota
	// SignalScroll stops prompting but keeps reporting failures
	SignalScroll
	// SignalBatch stops prompting and reporting for good
	SignalBatch
)

// SignalAll is every signal a waiter may report
const SignalAll = SignalContinue | SignalScroll | SignalBatch

// String returns the names of the signals in s joined by '|'
func (s Signal) String() string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	if s&SignalContinue != 0 {
		parts = append(parts, "CONTINUE")
	}
	if s&SignalScroll != 0 {
		parts = append(parts, "SCROLL")
	}
	if s&SignalBatch != 0 {
		parts = append(parts, "BATCH")
	}
	if s&^SignalAll != 0 {
		parts = append(parts, "UNKNOWN")
	}
	return strings.Join(parts, "|")
}

// Pick reduces a set of signals that fired together to the one that
// takes effect: scroll beats batch, batch beats continue. Anything else
// means continue.
func Pick(s Signal) Signal {
	switch {
	case s&SignalScroll != 0:
		return SignalScroll
	case s&SignalBatch != 0:
		return SignalBatch
	default:
		return SignalContinue
	}
}

// Waiter blocks until the operator raises a signal
type Waiter interface {
	// Clear discards signals raised before the prompt was shown
	Clear()

	// Wait blocks until at least one signal arrives and returns every
	// signal that fired
	Wait() Signal
}
