package tracer

import (
	"sync"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
)

var (
	defaultTracer *Tracer
	defaultMu     sync.RWMutex
)

func init() {
	// Call-tracing level, no tag, raw console on stderr, depth 0
	defaultTracer = New()
}

// Default returns the default tracer
func Default() *Tracer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultTracer
}

// SetDefault replaces the default tracer
func SetDefault(t *Tracer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultTracer = t
}

// Package-level convenience functions using the default tracer

// SetDestination sets the default tracer's destination handle
func SetDestination(d handler.Destination) {
	Default().SetDestination(d)
}

// SetProgramName sets the default tracer's program-name tag
func SetProgramName(name string) {
	Default().SetProgramName(name)
}

// SetLevel sets the default tracer's level and returns the previous one
func SetLevel(level core.Level) core.Level {
	return Default().SetLevel(level)
}

// GetLevel returns the default tracer's level
func GetLevel() core.Level {
	return Default().Level()
}

// PushLevel stashes the default tracer's level and switches to level
func PushLevel(level core.Level) {
	Default().PushLevel(level)
}

// PopLevel restores the default tracer's stashed level
func PopLevel() {
	Default().PopLevel()
}

// Indent writes the default tracer's tag and depth indent
func Indent() {
	Default().Indent()
}

// ShowValue dumps a value through the default tracer
func ShowValue(value uint32, width int, name, file string, line int) {
	Default().ShowValue(value, width, name, file, line)
}

// ShowPointer dumps a pointer through the default tracer
func ShowPointer(p any, name, file string, line int) {
	Default().ShowPointer(p, name, file, line)
}

// ShowString dumps a string through the default tracer
func ShowString(s *string, name, file string, line int) {
	Default().ShowString(s, name, file, line)
}

// ShowMessage writes a message through the default tracer
func ShowMessage(text, file string, line int) {
	Default().ShowMessage(text, file, line)
}

// Header writes a line header through the default tracer
func Header(file string, line int) {
	Default().Header(file, line)
}

// Printf writes a formatted line through the default tracer
func Printf(format string, args ...any) {
	Default().Printf(format, args...)
}

// Logf writes formatted text through the default tracer and flushes
func Logf(format string, args ...any) {
	Default().Logf(format, args...)
}

// Enter traces function entry through the default tracer
func Enter(file string, line int, function string) {
	Default().Enter(file, line, function)
}

// Leave traces function exit through the default tracer
func Leave(file string, line int, function string) {
	Default().Leave(file, line, function)
}

// LeaveWithResult traces function exit with a result through the default tracer
func LeaveWithResult(file string, line int, function string, result uint32) {
	Default().LeaveWithResult(file, line, function, result)
}

// Assert reports a failed assertion through the default tracer
func Assert(ok bool, expr, file string, line int, function string) {
	Default().Assert(ok, expr, file, line, function)
}

// Trace enters the calling function through the default tracer and
// returns a func that leaves it
func Trace() func() {
	return Default().trace(2)
}

// Check asserts through the default tracer using the caller's site
func Check(ok bool, expr string) {
	Default().check(ok, expr, 2)
}
