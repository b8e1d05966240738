package tracer

import (
	"io"

	"github.com/philipp01105/ntrace/confirm"
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
	"github.com/philipp01105/ntrace/handler/consolehandler"
	"github.com/philipp01105/ntrace/handler/filehandler"
)

// MaxProgramNameLen is the longest program-name tag kept; longer names
// are truncated
const MaxProgramNameLen = 39

// Tracer holds the trace state for one instrumented program
type Tracer struct {
	level       core.Level
	stash       core.Level
	stashed     bool
	programName string
	depth       int

	console  *consolehandler.Console
	dest     handler.Destination
	buffered *filehandler.Buffered

	policy      AssertionPolicy
	waiter      confirm.Waiter
	interactive interactiveState
}

// Builder provides a fluent API for building Tracer instances
type Builder struct {
	level       core.Level
	programName string
	console     io.ByteWriter
	dest        handler.Destination
	policy      AssertionPolicy
	waiter      confirm.Waiter
}

// NewBuilder creates a new tracer builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.LevelCallTracing, // Default level
	}
}

// WithLevel sets the initial level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithProgramName sets the program-name tag
func (b *Builder) WithProgramName(name string) *Builder {
	b.programName = name
	return b
}

// WithConsole sets the raw console writer (default: stderr)
func (b *Builder) WithConsole(w io.ByteWriter) *Builder {
	b.console = w
	return b
}

// WithDestination sets the initial destination handle
func (b *Builder) WithDestination(d handler.Destination) *Builder {
	b.dest = d
	return b
}

// WithAssertionPolicy selects how failed assertions are handled
func (b *Builder) WithAssertionPolicy(p AssertionPolicy) *Builder {
	b.policy = p
	return b
}

// WithWaiter sets the signal source for interactive confirmation
// (default: confirm.Auto, created on the first interactive prompt)
func (b *Builder) WithWaiter(w confirm.Waiter) *Builder {
	b.waiter = w
	return b
}

// Build creates the Tracer instance
func (b *Builder) Build() *Tracer {
	t := &Tracer{
		level:   b.level,
		console: consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: b.console}),
		policy:  b.policy,
		waiter:  b.waiter,
	}
	t.SetProgramName(b.programName)
	t.SetDestination(b.dest)
	return t
}

// New creates a Tracer with default settings
func New() *Tracer {
	return NewBuilder().Build()
}

// sink returns the destination sink when a handle is set and the raw
// console otherwise.
func (t *Tracer) sink() handler.Sink {
	if t.buffered != nil {
		return t.buffered
	}
	return t.console
}

// Stats returns the statistics of the sink currently in use
func (t *Tracer) Stats() handler.Snapshot {
	if t.buffered != nil {
		return t.buffered.Stats()
	}
	return t.console.Stats()
}
