// Package tracer is the public API of ntrace: leveled developer
// tracing, call entry/exit nesting, typed value dumps and non-fatal
// assertion checks for code that runs without a usable debugger.
//
// All trace state lives in a Tracer: the current Level, a single-slot
// level stash for PushLevel/PopLevel, an optional program-name tag,
// the call nesting depth and the output destination. The package keeps
// a default Tracer (call-tracing level, console output) and the
// package-level functions delegate to it:
//
//	tracer.SetProgramName("smbfs")
//	tracer.Enter("smbfs.c", 120, "mount")
//	tracer.ShowString(&share, "share", "smbfs.c", 121)
//	tracer.LeaveWithResult("smbfs.c", 140, "mount", 0)
//
// For custom configuration, use the Builder:
//
//	t := tracer.NewBuilder().
//	    WithLevel(core.LevelReports).
//	    WithDestination(file).
//	    Build()
//
// Output goes to the raw console unless a destination handle is set;
// with a destination every complete line is followed by a Sync. The
// caller keeps ownership of the destination.
//
// A Tracer is not safe for concurrent use. Callers on several
// goroutines must serialize access themselves or accept interleaved
// lines and a corrupted nesting depth.
package tracer
