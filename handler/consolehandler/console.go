package consolehandler

import (
	"fmt"
	"io"
	"os"

	"github.com/philipp01105/ntrace/handler"
)

// fileByteWriter adapts an io.Writer to the raw one-byte-at-a-time
// contract. Every byte becomes its own Write call.
type fileByteWriter struct {
	w   io.Writer
	one [1]byte
}

func (fw *fileByteWriter) WriteByte(c byte) error {
	fw.one[0] = c
	_, err := fw.w.Write(fw.one[:])
	return err
}

// RawWriter adapts w to a raw byte writer without any buffering.
func RawWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &fileByteWriter{w: w}
}

// charSink routes formatted output through putch so the formatted path
// obeys the same NUL suppression as WriteString.
type charSink struct {
	c   *Console
	err error
}

func (cs *charSink) Write(p []byte) (int, error) {
	for _, b := range p {
		if err := cs.c.putch(b); err != nil && cs.err == nil {
			cs.err = err
		}
	}
	return len(p), nil
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer receives one byte per call (default: os.Stderr, unbuffered)
	Writer io.ByteWriter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = RawWriter(os.Stderr)
	}
}

// Console is the direct, unbuffered console sink
type Console struct {
	writer io.ByteWriter
	stats  *handler.Stats
}

var _ handler.Sink = (*Console)(nil)

// NewConsoleHandler creates a new console sink.
func NewConsoleHandler(cfg ConsoleConfig) *Console {
	applyConsoleDefaults(&cfg)
	return &Console{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
	}
}

// putch forwards one byte, dropping NUL.
func (c *Console) putch(b byte) error {
	if b == 0 {
		return nil
	}
	return c.writer.WriteByte(b)
}

// WriteString writes s one byte at a time.
func (c *Console) WriteString(s string) {
	var err error
	for i := 0; i < len(s); i++ {
		if werr := c.putch(s[i]); werr != nil && err == nil {
			err = werr
		}
	}
	c.stats.RecordWrite(err)
}

// Printf renders format through the character sink callback.
func (c *Console) Printf(format string, args ...any) {
	cs := charSink{c: c}
	fmt.Fprintf(&cs, format, args...)
	c.stats.RecordWrite(cs.err)
}

// Flush is a no-op: the raw console is immediate.
func (c *Console) Flush() {}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() handler.Snapshot {
	return c.stats.GetSnapshot()
}
