package formatter

import (
	"bytes"
	"sync"
)

// IndentUnit is written once per nesting level
const IndentUnit = "   "

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// AppendIndent writes "(<name>) " when name is set, then IndentUnit
// depth times when indent is true. A negative depth writes no indent.
func AppendIndent(buf *bytes.Buffer, name string, depth int, indent bool) {
	if name != "" {
		buf.WriteByte('(')
		buf.WriteString(name)
		buf.WriteString(") ")
	}
	if !indent {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteString(IndentUnit)
	}
}
