package confirm

// ChannelWaiter receives signals sent by Go code
type ChannelWaiter struct {
	ch chan Signal
}

var _ Waiter = (*ChannelWaiter)(nil)

// NewChannelWaiter creates a waiter whose Raise calls queue up to
// buffer signals without blocking.
func NewChannelWaiter(buffer int) *ChannelWaiter {
	return &ChannelWaiter{ch: make(chan Signal, buffer)}
}

// Raise delivers s to the waiter. It blocks when the buffer is full.
func (w *ChannelWaiter) Raise(s Signal) {
	w.ch <- s
}

// Clear discards queued signals.
func (w *ChannelWaiter) Clear() {
	for {
		select {
		case <-w.ch:
		default:
			return
		}
	}
}

// Wait blocks for the next signal and merges any others already queued.
func (w *ChannelWaiter) Wait() Signal {
	s := <-w.ch
	for {
		select {
		case more := <-w.ch:
			s |= more
		default:
			return s
		}
	}
}
