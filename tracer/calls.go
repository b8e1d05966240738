package tracer

import (
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
)

// Enter traces entry into function and increments the nesting depth.
// The depth changes even when the line is filtered out so that Leave
// stays balanced.
func (t *Tracer) Enter(file string, line int, function string) {
	if t.level >= core.LevelCallTracing {
		buf := formatter.GetBuffer()
		t.appendIndent(buf)
		formatter.AppendEnter(buf, file, line, function)
		t.emitLine(buf)
	}

	t.depth++
}

// Leave decrements the nesting depth and traces the exit from function.
func (t *Tracer) Leave(file string, line int, function string) {
	t.depth--

	if t.level >= core.LevelCallTracing {
		buf := formatter.GetBuffer()
		t.appendIndent(buf)
		formatter.AppendLeave(buf, file, line, function)
		t.emitLine(buf)
	}
}

// LeaveWithResult is Leave with the function's result in hex and decimal.
func (t *Tracer) LeaveWithResult(file string, line int, function string, result uint32) {
	t.depth--

	if t.level >= core.LevelCallTracing {
		buf := formatter.GetBuffer()
		t.appendIndent(buf)
		formatter.AppendResult(buf, file, line, function, result)
		t.emitLine(buf)
	}
}

// Trace enters the calling function and returns a func that leaves it:
//
//	defer t.Trace()()
func (t *Tracer) Trace() func() {
	return t.trace(2)
}

// trace enters the function skip frames above itself.
func (t *Tracer) trace(skip int) func() {
	site := core.Caller(skip)
	t.Enter(site.File, site.Line, site.Function)
	return func() {
		leave := core.Caller(1)
		t.Leave(site.File, leave.Line, site.Function)
	}
}
