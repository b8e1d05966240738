// Package walk is a directory walker instrumented with tracer calls.
//
// It exists as a realistic caller for the tracing facility: every
// directory is bracketed by Enter and LeaveWithResult, entries are
// dumped with the inspectors, and invariants are checked with Check.
package walk
