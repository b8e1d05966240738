package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ntrace/handler"
)

// FileConfig holds configuration for a file destination
type FileConfig struct {
	// Filename is the path to the trace file
	Filename string
	// Append keeps existing content instead of truncating (default: false)
	Append bool
	// BufferSize is the write buffer size in bytes (default: 4096)
	BufferSize int
	// FlushInterval is the background flush period (default: 30s)
	FlushInterval time.Duration
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 30 * time.Second
	}
}

// File is a buffered, file-backed destination handle
type File struct {
	name string
	file *os.File
	ws   *zapcore.BufferedWriteSyncer
}

var _ handler.Destination = (*File)(nil)

// Open creates the file (and its directory) and returns a buffered
// destination over it. The caller owns the returned File.
func Open(cfg FileConfig) (*File, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(cfg.Filename, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}

	return &File{
		name: cfg.Filename,
		file: file,
		ws: &zapcore.BufferedWriteSyncer{
			WS:            zapcore.AddSync(file),
			Size:          cfg.BufferSize,
			FlushInterval: cfg.FlushInterval,
		},
	}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Write buffers p.
func (f *File) Write(p []byte) (int, error) {
	return f.ws.Write(p)
}

// Sync flushes buffered bytes and syncs the file to stable storage.
func (f *File) Sync() error {
	return f.ws.Sync()
}

// Close flushes pending bytes, stops the background flusher and closes
// the file.
func (f *File) Close() error {
	return multierr.Append(f.ws.Stop(), f.file.Close())
}
