package multihandler

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/ntrace/handler"
)

// MultiDestination writes to multiple destinations
type MultiDestination struct {
	dests []handler.Destination
}

var _ handler.Destination = (*MultiDestination)(nil)

// NewMultiDestination creates a new multi-destination. Nil children are
// skipped.
func NewMultiDestination(dests ...handler.Destination) *MultiDestination {
	m := &MultiDestination{dests: make([]handler.Destination, 0, len(dests))}
	for _, d := range dests {
		if d != nil {
			m.dests = append(m.dests, d)
		}
	}
	return m
}

// Write sends p to every child. A failing child does not stop the
// others; all errors are combined.
func (m *MultiDestination) Write(p []byte) (int, error) {
	var err error
	for _, d := range m.dests {
		n, werr := d.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		err = multierr.Append(err, werr)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sync syncs every child and combines their errors.
func (m *MultiDestination) Sync() error {
	var err error
	for _, d := range m.dests {
		err = multierr.Append(err, d.Sync())
	}
	return err
}

// Len returns the number of child destinations.
func (m *MultiDestination) Len() int {
	return len(m.dests)
}
