package confirm

import (
	"os"
	"os/signal"
)

// SignalWaiter waits for OS signals
type SignalWaiter struct {
	ch        chan os.Signal
	listening bool
}

var _ Waiter = (*SignalWaiter)(nil)

// NewSignalWaiter creates a waiter for the confirmation signals. Signal
// handling is only taken over from Clear until Wait returns; outside a
// prompt the signals keep their default behaviour.
func NewSignalWaiter() *SignalWaiter {
	return &SignalWaiter{ch: make(chan os.Signal, len(osSignals))}
}

// listen starts relaying the confirmation signals.
func (w *SignalWaiter) listen() {
	if w.listening {
		return
	}
	sigs := make([]os.Signal, 0, len(osSignals))
	for sig := range osSignals {
		sigs = append(sigs, sig)
	}
	signal.Notify(w.ch, sigs...)
	w.listening = true
}

// drain discards queued signals.
func (w *SignalWaiter) drain() {
	for {
		select {
		case <-w.ch:
		default:
			return
		}
	}
}

// Clear starts listening and discards signals still queued from an
// earlier prompt.
func (w *SignalWaiter) Clear() {
	w.listen()
	w.drain()
}

// Wait blocks until a confirmation signal arrives, then restores default
// handling.
func (w *SignalWaiter) Wait() Signal {
	w.listen()
	defer w.Stop()

	s := osSignals[<-w.ch]
	for {
		select {
		case sig := <-w.ch:
			s |= osSignals[sig]
		default:
			return s
		}
	}
}

// Stop restores default handling of the confirmation signals.
func (w *SignalWaiter) Stop() {
	if !w.listening {
		return
	}
	signal.Stop(w.ch)
	w.drain()
	w.listening = false
}
