package tracer

import (
	"bytes"
	"reflect"
	"unsafe"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
)

// appendIndent renders the program-name tag and, at call-tracing level,
// the depth indent into buf.
func (t *Tracer) appendIndent(buf *bytes.Buffer) {
	formatter.AppendIndent(buf, t.programName, t.depth, t.level >= core.LevelCallTracing)
}

// emitLine writes a complete line and flushes the sink.
func (t *Tracer) emitLine(buf *bytes.Buffer) {
	s := t.sink()
	s.WriteString(buf.String())
	s.Flush()
	formatter.PutBuffer(buf)
}

// Indent writes the program-name tag and depth indent with no payload.
func (t *Tracer) Indent() {
	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	if buf.Len() > 0 {
		t.sink().WriteString(buf.String())
	}
	formatter.PutBuffer(buf)
}

// ShowValue dumps value in decimal and in hex sized to width bytes
// (1, 2 or 4). One-byte values also show their character.
func (t *Tracer) ShowValue(value uint32, width int, name, file string, line int) {
	if t.level < core.LevelReports {
		return
	}

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	formatter.AppendValue(buf, file, line, name, value, width)
	t.emitLine(buf)
}

// ShowPointer dumps the address p points to, or NULL for a nil pointer.
// Values that carry no address render as NULL too.
func (t *Tracer) ShowPointer(p any, name, file string, line int) {
	if t.level < core.LevelReports {
		return
	}

	addr, present := address(p)

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	formatter.AppendPointer(buf, file, line, name, addr, present)
	t.emitLine(buf)
}

// ShowString dumps the address and contents of *s. A nil s renders as
// NULL followed by empty quotes.
func (t *Tracer) ShowString(s *string, name, file string, line int) {
	if t.level < core.LevelReports {
		return
	}

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	if s == nil {
		formatter.AppendString(buf, file, line, name, 0, "", false)
	} else {
		addr := uintptr(unsafe.Pointer(unsafe.StringData(*s)))
		formatter.AppendString(buf, file, line, name, addr, *s, true)
	}
	t.emitLine(buf)
}

// ShowMessage writes "<file>:<line>:<text>".
func (t *Tracer) ShowMessage(text, file string, line int) {
	if t.level < core.LevelReports {
		return
	}

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	formatter.AppendMessage(buf, file, line, text)
	t.emitLine(buf)
}

// Header writes the indent and "<file>:<line>:" without a newline or a
// flush, as the start of a line finished by Printf.
func (t *Tracer) Header(file string, line int) {
	if t.level < core.LevelReports {
		return
	}

	buf := formatter.GetBuffer()
	t.appendIndent(buf)
	formatter.AppendHeader(buf, file, line)
	t.sink().WriteString(buf.String())
	formatter.PutBuffer(buf)
}

// Printf renders format with args, appends a newline and flushes.
func (t *Tracer) Printf(format string, args ...any) {
	if t.level < core.LevelReports {
		return
	}

	s := t.sink()
	s.Printf(format, args...)
	s.WriteString("\n")
	s.Flush()
}

// Logf renders format with args and flushes without adding a newline,
// so the text is durable before whatever the caller does next.
func (t *Tracer) Logf(format string, args ...any) {
	if t.level < core.LevelReports {
		return
	}

	s := t.sink()
	s.Printf(format, args...)
	s.Flush()
}

// address extracts the address held by p.
func address(p any) (uintptr, bool) {
	if p == nil {
		return 0, false
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		if v.IsNil() {
			return 0, false
		}
		return v.Pointer(), true
	case reflect.Uintptr:
		addr := uintptr(v.Uint())
		return addr, addr != 0
	default:
		return 0, false
	}
}
