package filehandler

import (
	"fmt"
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ntrace/handler"
)

// Buffered is the sink over a caller-owned destination handle
type Buffered struct {
	dest  handler.Destination
	stats *handler.Stats
}

var _ handler.Sink = (*Buffered)(nil)

// NewBuffered creates a sink writing into dest. The caller keeps
// ownership of dest.
func NewBuffered(dest handler.Destination) *Buffered {
	return &Buffered{
		dest:  dest,
		stats: handler.NewStats(),
	}
}

// Wrap adapts a plain writer to a destination handle. Writers that
// already have a Sync method keep it; others get a no-op Sync.
func Wrap(w io.Writer) handler.Destination {
	return zapcore.AddSync(w)
}

// Destination returns the handle this sink writes into.
func (b *Buffered) Destination() handler.Destination {
	return b.dest
}

// WriteString writes s into the destination.
func (b *Buffered) WriteString(s string) {
	_, err := io.WriteString(b.dest, s)
	b.stats.RecordWrite(err)
}

// Printf renders format with args into the destination.
func (b *Buffered) Printf(format string, args ...any) {
	_, err := fmt.Fprintf(b.dest, format, args...)
	b.stats.RecordWrite(err)
}

// Flush syncs the destination. Failures are counted, not returned.
func (b *Buffered) Flush() {
	b.stats.RecordFlush(b.dest.Sync())
}

// Stats returns a snapshot of the current statistics
func (b *Buffered) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}
