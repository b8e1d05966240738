package handler

import (
	"io"
)

// Sink is the single output path a trace line is written through
type Sink interface {
	// WriteString writes s verbatim
	WriteString(s string)

	// Printf renders format with args through the sink's native formatter
	Printf(format string, args ...any)

	// Flush forces pending bytes out; a no-op for unbuffered sinks
	Flush()
}

// Destination is a caller-owned buffered output handle. It has the same
// method set as zapcore.WriteSyncer, so any zap write syncer can be used
// directly.
type Destination interface {
	io.Writer
	Sync() error
}

// StatsProvider is implemented by sinks that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
