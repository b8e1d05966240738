package tracer

import (
	"github.com/philipp01105/ntrace/confirm"
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
)

// AssertionPolicy selects what a failed assertion does
type AssertionPolicy int

const (
	// ReportOnly writes the failure and continues (default)
	ReportOnly AssertionPolicy = iota
	// InteractiveConfirm writes the failure to the console and waits
	// for the operator to continue, scroll or switch to batch mode
	InteractiveConfirm
)

// String returns the string representation of the policy
func (p AssertionPolicy) String() string {
	switch p {
	case ReportOnly:
		return "ReportOnly"
	case InteractiveConfirm:
		return "InteractiveConfirm"
	default:
		return "Unknown"
	}
}

// Operator prompt and acknowledgements for InteractiveConfirm
const (
	confirmPrompt = " ^C to continue, ^D to enter scroll mode, ^E to enter batch mode\r"
	ackScroll     = "Ok, entering scroll mode\x1b[K\n"
	ackBatch      = "Ok, entering batch mode\x1b[K\n"
	ackContinue   = "\x1b[K\r"
)

// interactiveState is sticky for the lifetime of the Tracer
type interactiveState struct {
	scroll bool
	batch  bool
}

// ScrollMode reports whether prompting stopped because the operator
// chose scroll mode
func (t *Tracer) ScrollMode() bool {
	return t.interactive.scroll
}

// BatchMode reports whether interactive assertion output is off for good
func (t *Tracer) BatchMode() bool {
	return t.interactive.batch
}

// Assert reports a failed assertion. It never aborts: execution always
// continues after the report (or after the operator answers the
// prompt).
func (t *Tracer) Assert(ok bool, expr, file string, line int, function string) {
	if ok {
		return
	}

	if t.policy == InteractiveConfirm {
		// The prompt needs the console; with a destination set the
		// failure is not written anywhere.
		if t.buffered == nil {
			t.confirmFailure(expr, file, line, function)
		}
		return
	}

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	formatter.AppendAssertion(buf, file, line, expr, function)
	t.emitLine(buf)
}

// Check is Assert with the caller's file, line and function filled in.
func (t *Tracer) Check(ok bool, expr string) {
	t.check(ok, expr, 2)
}

// check asserts with the site skip frames above itself.
func (t *Tracer) check(ok bool, expr string, skip int) {
	if ok {
		return
	}
	site := core.Caller(skip)
	t.Assert(ok, expr, site.File, site.Line, site.Function)
}

// confirmFailure prints the failure on the console and, unless scroll
// mode is on, blocks for the operator's choice.
func (t *Tracer) confirmFailure(expr, file string, line int, function string) {
	if t.interactive.batch {
		return
	}

	buf := formatter.GetBuffer()
	formatter.AppendAssertion(buf, file, line, expr, function)
	t.console.WriteString(buf.String())
	formatter.PutBuffer(buf)

	if t.interactive.scroll {
		return
	}

	if t.waiter == nil {
		t.waiter = confirm.Auto()
	}

	t.waiter.Clear()
	t.console.WriteString(confirmPrompt)

	switch confirm.Pick(t.waiter.Wait()) {
	case confirm.SignalScroll:
		t.interactive.scroll = true
		t.console.WriteString(ackScroll)
	case confirm.SignalBatch:
		t.interactive.batch = true
		t.console.WriteString(ackBatch)
	default:
		t.console.WriteString(ackContinue)
	}
}
