package formatter

import (
	"bytes"
	"strings"
	"testing"
)

func render(fn func(buf *bytes.Buffer)) string {
	buf := GetBuffer()
	defer PutBuffer(buf)
	fn(buf)
	return buf.String()
}

func TestAppendIndent(t *testing.T) {
	tests := []struct {
		name   string
		prog   string
		depth  int
		indent bool
		want   string
	}{
		{"nothing", "", 3, false, ""},
		{"depth only", "", 2, true, "      "},
		{"name only", "smbfs", 2, false, "(smbfs) "},
		{"name and depth", "smbfs", 1, true, "(smbfs)    "},
		{"negative depth", "", -1, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(buf *bytes.Buffer) {
				AppendIndent(buf, tt.prog, tt.depth, tt.indent)
			})
			if got != tt.want {
				t.Errorf("AppendIndent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendHeader(t *testing.T) {
	got := render(func(buf *bytes.Buffer) { AppendHeader(buf, "smbfs.c", 1234) })
	if got != "smbfs.c:1234:" {
		t.Errorf("AppendHeader() = %q", got)
	}
}

func TestAppendValue(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		width int
		want  string
	}{
		{"printable byte", 65, 1, "f.c:9:c = 65, 0x41, 'A'\n"},
		{"control byte", 7, 1, "f.c:9:c = 7, 0x07, '\\x07'\n"},
		{"zero byte", 0, 1, "f.c:9:c = 0, 0x00, '\\x00'\n"},
		{"delete", 0x7f, 1, "f.c:9:c = 127, 0x7f, '\\x7f'\n"},
		{"high control", 0x9f, 1, "f.c:9:c = 159, 0x9f, '\\x9f'\n"},
		{"latin1", 0xe9, 1, "f.c:9:c = 233, 0xe9, 'é'\n"},
		{"byte width over 255", 256, 1, "f.c:9:c = 256, 0x100\n"},
		{"word", 65, 2, "f.c:9:c = 65, 0x0041\n"},
		{"long", 65, 4, "f.c:9:c = 65, 0x00000041\n"},
		{"odd width", 65, 3, "f.c:9:c = 65, 0x00000041\n"},
		{"signed decimal", 0xffffffff, 4, "f.c:9:c = -1, 0xffffffff\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(buf *bytes.Buffer) {
				AppendValue(buf, "f.c", 9, "c", tt.value, tt.width)
			})
			if got != tt.want {
				t.Errorf("AppendValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsControl(t *testing.T) {
	for c := uint32(0); c < 256; c++ {
		want := c < 0x20 || (c >= 0x7f && c <= 0x9f)
		if got := IsControl(c); got != want {
			t.Errorf("IsControl(0x%02x) = %v, want %v", c, got, want)
		}
	}
}

func TestAppendPointer(t *testing.T) {
	got := render(func(buf *bytes.Buffer) { AppendPointer(buf, "f.c", 3, "p", 0, false) })
	if got != "f.c:3:p = NULL\n" {
		t.Errorf("absent pointer = %q", got)
	}

	got = render(func(buf *bytes.Buffer) { AppendPointer(buf, "f.c", 3, "p", 0xdeadbeef, true) })
	if got != "f.c:3:p = 0xdeadbeef\n" {
		t.Errorf("present pointer = %q", got)
	}

	got = render(func(buf *bytes.Buffer) { AppendPointer(buf, "f.c", 3, "p", 0xa0, true) })
	if got != "f.c:3:p = 0x000000a0\n" {
		t.Errorf("small pointer = %q", got)
	}
}

func TestAppendString(t *testing.T) {
	got := render(func(buf *bytes.Buffer) { AppendString(buf, "f.c", 4, "s", 0, "", false) })
	if got != "f.c:4:s = NULL \"\"\n" {
		t.Errorf("absent string = %q", got)
	}

	got = render(func(buf *bytes.Buffer) { AppendString(buf, "f.c", 4, "s", 0x1000, "share", true) })
	if got != "f.c:4:s = 0x00001000 \"share\"\n" {
		t.Errorf("present string = %q", got)
	}
}

func TestCallShapes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(buf *bytes.Buffer)
		want string
	}{
		{"message", func(buf *bytes.Buffer) { AppendMessage(buf, "f.c", 1, "hello") }, "f.c:1:hello\n"},
		{"enter", func(buf *bytes.Buffer) { AppendEnter(buf, "f.c", 2, "mount") }, "f.c:2:Entering mount\n"},
		{"leave", func(buf *bytes.Buffer) { AppendLeave(buf, "f.c", 3, "mount") }, "f.c:3: Leaving mount\n"},
		{"result", func(buf *bytes.Buffer) { AppendResult(buf, "f.c", 4, "mount", 42) }, "f.c:4: Leaving mount (result 0x0000002a, 42)\n"},
		{"negative result", func(buf *bytes.Buffer) { AppendResult(buf, "f.c", 4, "mount", 0xfffffffe) }, "f.c:4: Leaving mount (result 0xfffffffe, -2)\n"},
		{"assertion", func(buf *bytes.Buffer) { AppendAssertion(buf, "f.c", 5, "x != NULL", "mount") }, "f.c:5:Expression 'x != NULL' failed assertion in mount().\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.fn); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPutBuffer_DropsLargeBuffers(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString(strings.Repeat("x", 128*1024))
	PutBuffer(buf)

	// A fresh buffer from the pool is always empty
	if got := GetBuffer(); got.Len() != 0 {
		t.Errorf("Expected empty buffer, got length %d", got.Len())
	}
}

func BenchmarkAppendValue(b *testing.B) {
	buf := GetBuffer()
	defer PutBuffer(buf)
	for i := 0; i < b.N; i++ {
		buf.Reset()
		AppendValue(buf, "smbfs.c", 1234, "ch", 65, 1)
	}
}
