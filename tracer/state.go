package tracer

import (
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
	"github.com/philipp01105/ntrace/handler/filehandler"
)

// SetDestination replaces the output destination. Nil switches back to
// the raw console. The Tracer never closes the handle.
func (t *Tracer) SetDestination(d handler.Destination) {
	t.dest = d
	if d == nil {
		t.buffered = nil
		return
	}
	t.buffered = filehandler.NewBuffered(d)
}

// Destination returns the current destination handle, or nil
func (t *Tracer) Destination() handler.Destination {
	return t.dest
}

// SetProgramName sets the tag printed in front of every indented line.
// Names longer than MaxProgramNameLen bytes are truncated; an empty
// name clears the tag.
func (t *Tracer) SetProgramName(name string) {
	if len(name) > MaxProgramNameLen {
		name = name[:MaxProgramNameLen]
	}
	t.programName = name
}

// ProgramName returns the current tag
func (t *Tracer) ProgramName() string {
	return t.programName
}

// SetLevel sets the level and returns the previous one
func (t *Tracer) SetLevel(level core.Level) core.Level {
	old := t.level
	t.level = level
	return old
}

// Level returns the current level
func (t *Tracer) Level() core.Level {
	return t.level
}

// PushLevel stashes the current level and switches to level. The stash
// holds one level only: a second push before a pop replaces it.
func (t *Tracer) PushLevel(level core.Level) {
	t.stash = t.SetLevel(level)
	t.stashed = true
}

// PopLevel restores the stashed level. Without a pending push it does
// nothing.
func (t *Tracer) PopLevel() {
	if !t.stashed {
		return
	}
	t.SetLevel(t.stash)
	t.stashed = false
}

// Depth returns the current call nesting depth
func (t *Tracer) Depth() int {
	return t.depth
}
