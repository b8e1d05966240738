package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/ntrace/handler"
)

// noopDestination counts bytes and syncs without doing any I/O
type noopDestination struct {
	bytes atomic.Uint64
	syncs atomic.Uint64
}

var _ handler.Destination = (*noopDestination)(nil)

func newNoopDestination() *noopDestination {
	return &noopDestination{}
}

func (d *noopDestination) Write(p []byte) (int, error) {
	d.bytes.Add(uint64(len(p)))
	return len(p), nil
}

func (d *noopDestination) Sync() error {
	d.syncs.Add(1)
	return nil
}
