package formatter

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// AppendHeader writes "<file>:<line>:" with no terminator.
func AppendHeader(buf *bytes.Buffer, file string, line int) {
	buf.WriteString(file)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(line), 10))
	buf.WriteByte(':')
}

// HexDigits maps a display width in bytes to the number of hex digits
// rendered for it. Widths other than 1 and 2 render as 4 bytes.
func HexDigits(width int) int {
	switch width {
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// appendHex writes v as lowercase hex, zero-padded to digits.
func appendHex(buf *bytes.Buffer, v uint64, digits int) {
	var tmp [16]byte
	hex := strconv.AppendUint(tmp[:0], v, 16)
	for i := len(hex); i < digits; i++ {
		buf.WriteByte('0')
	}
	buf.Write(hex)
}

// appendSigned writes v reinterpreted as a signed 32-bit decimal.
func appendSigned(buf *bytes.Buffer, v uint32) {
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(int32(v)), 10))
}

// IsControl reports whether c renders as an escape rather than a
// literal character: C0 controls and the 0x7F-0x9F band.
func IsControl(c uint32) bool {
	return c < 0x20 || (c >= 0x7f && c < 0xa0)
}

// AppendValue writes "<file>:<line>:<name> = <dec>, 0x<hex>" and, for
// one-byte values below 256, a quoted character suffix.
func AppendValue(buf *bytes.Buffer, file string, line int, name string, value uint32, width int) {
	AppendHeader(buf, file, line)
	buf.WriteString(name)
	buf.WriteString(" = ")
	appendSigned(buf, value)
	buf.WriteString(", 0x")
	appendHex(buf, uint64(value), HexDigits(width))

	if width == 1 && value < 256 {
		buf.WriteString(", '")
		if IsControl(value) {
			buf.WriteString(`\x`)
			appendHex(buf, uint64(value), 2)
		} else {
			// 0xA0-0xFF are Latin-1 code points
			buf.Write(utf8.AppendRune(buf.AvailableBuffer(), rune(value)))
		}
		buf.WriteByte('\'')
	}
	buf.WriteByte('\n')
}

// AppendPointer writes "<file>:<line>:<name> = 0x<8 hex>" or "= NULL"
// when present is false. Only the low 32 address bits are shown.
func AppendPointer(buf *bytes.Buffer, file string, line int, name string, addr uintptr, present bool) {
	AppendHeader(buf, file, line)
	buf.WriteString(name)
	if present {
		buf.WriteString(" = 0x")
		appendHex(buf, uint64(uint32(addr)), 8)
	} else {
		buf.WriteString(" = NULL")
	}
	buf.WriteByte('\n')
}

// AppendString writes "<file>:<line>:<name> = 0x<8 hex> \"<text>\"". An
// absent string renders as `NULL ""`.
func AppendString(buf *bytes.Buffer, file string, line int, name string, addr uintptr, text string, present bool) {
	AppendHeader(buf, file, line)
	buf.WriteString(name)
	if present {
		buf.WriteString(" = 0x")
		appendHex(buf, uint64(uint32(addr)), 8)
		buf.WriteString(` "`)
		buf.WriteString(text)
		buf.WriteString("\"\n")
		return
	}
	buf.WriteString(" = NULL \"\"\n")
}

// AppendMessage writes "<file>:<line>:<text>".
func AppendMessage(buf *bytes.Buffer, file string, line int, text string) {
	AppendHeader(buf, file, line)
	buf.WriteString(text)
	buf.WriteByte('\n')
}

// AppendEnter writes "<file>:<line>:Entering <function>".
func AppendEnter(buf *bytes.Buffer, file string, line int, function string) {
	AppendHeader(buf, file, line)
	buf.WriteString("Entering ")
	buf.WriteString(function)
	buf.WriteByte('\n')
}

// AppendLeave writes "<file>:<line>: Leaving <function>".
func AppendLeave(buf *bytes.Buffer, file string, line int, function string) {
	AppendHeader(buf, file, line)
	buf.WriteString(" Leaving ")
	buf.WriteString(function)
	buf.WriteByte('\n')
}

// AppendResult writes "<file>:<line>: Leaving <function> (result 0x<hex>, <dec>)".
func AppendResult(buf *bytes.Buffer, file string, line int, function string, result uint32) {
	AppendHeader(buf, file, line)
	buf.WriteString(" Leaving ")
	buf.WriteString(function)
	buf.WriteString(" (result 0x")
	appendHex(buf, uint64(result), 8)
	buf.WriteString(", ")
	appendSigned(buf, result)
	buf.WriteString(")\n")
}

// AppendAssertion writes the failed-assertion report line.
func AppendAssertion(buf *bytes.Buffer, file string, line int, expr, function string) {
	AppendHeader(buf, file, line)
	buf.WriteString("Expression '")
	buf.WriteString(expr)
	buf.WriteString("' failed assertion in ")
	buf.WriteString(function)
	buf.WriteString("().\n")
}
