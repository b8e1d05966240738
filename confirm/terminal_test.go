package confirm

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTerminalWaiter_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := NewTerminalWaiter(f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
}

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Signal
	}{
		{"ctrl-c", "\x03", SignalContinue},
		{"ctrl-d after noise", "abc\x04", SignalScroll},
		{"ctrl-e", "\x05", SignalBatch},
		{"eof", "xyz", SignalContinue},
		{"same read", "\x03\x05", SignalContinue | SignalBatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readKeys(strings.NewReader(tt.input)); got != tt.want {
				t.Errorf("readKeys(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// oneByteReader returns a single byte per Read
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	return o.r.Read(p[:1])
}

func TestReadKeys_AcrossReads(t *testing.T) {
	if got := readKeys(oneByteReader{strings.NewReader("q\n\x04")}); got != SignalScroll {
		t.Errorf("readKeys() = %v, want SCROLL", got)
	}
}
