package confirm

import (
	"testing"
)

func TestSignal_String(t *testing.T) {
	tests := []struct {
		s    Signal
		want string
	}{
		{0, "NONE"},
		{SignalContinue, "CONTINUE"},
		{SignalScroll | SignalBatch, "SCROLL|BATCH"},
		{SignalAll, "CONTINUE|SCROLL|BATCH"},
		{Signal(0x80), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Signal(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		in   Signal
		want Signal
	}{
		{SignalContinue, SignalContinue},
		{SignalScroll, SignalScroll},
		{SignalBatch, SignalBatch},
		{SignalAll, SignalScroll},
		{SignalContinue | SignalBatch, SignalBatch},
		{0, SignalContinue},
	}
	for _, tt := range tests {
		if got := Pick(tt.in); got != tt.want {
			t.Errorf("Pick(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestChannelWaiter(t *testing.T) {
	w := NewChannelWaiter(4)

	w.Raise(SignalBatch)
	w.Clear()

	w.Raise(SignalContinue)
	w.Raise(SignalScroll)
	if got := w.Wait(); got != SignalContinue|SignalScroll {
		t.Errorf("Wait() = %v, want CONTINUE|SCROLL", got)
	}

	done := make(chan Signal)
	go func() { done <- w.Wait() }()
	w.Raise(SignalBatch)
	if got := <-done; got != SignalBatch {
		t.Errorf("Wait() = %v, want BATCH", got)
	}
}
