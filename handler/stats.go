package handler

import (
	"sync/atomic"
)

// Stats tracks sink statistics
type Stats struct {
	// WritesTotal counts write calls that reached the underlying output
	WritesTotal uint64
	// WriteErrors counts write calls the underlying output rejected
	WriteErrors uint64
	// FlushesTotal counts flush calls forwarded to the underlying output
	FlushesTotal uint64
	// FlushErrors counts flush calls that failed
	FlushErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// RecordWrite increments the write counter and, when err is non-nil,
// the write error counter
func (s *Stats) RecordWrite(err error) {
	atomic.AddUint64(&s.WritesTotal, 1)
	if err != nil {
		atomic.AddUint64(&s.WriteErrors, 1)
	}
}

// RecordFlush increments the flush counter and, when err is non-nil,
// the flush error counter
func (s *Stats) RecordFlush(err error) {
	atomic.AddUint64(&s.FlushesTotal, 1)
	if err != nil {
		atomic.AddUint64(&s.FlushErrors, 1)
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WritesTotal, 0)
	atomic.StoreUint64(&s.WriteErrors, 0)
	atomic.StoreUint64(&s.FlushesTotal, 0)
	atomic.StoreUint64(&s.FlushErrors, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	WritesTotal  uint64
	WriteErrors  uint64
	FlushesTotal uint64
	FlushErrors  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WritesTotal:  atomic.LoadUint64(&s.WritesTotal),
		WriteErrors:  atomic.LoadUint64(&s.WriteErrors),
		FlushesTotal: atomic.LoadUint64(&s.FlushesTotal),
		FlushErrors:  atomic.LoadUint64(&s.FlushErrors),
	}
}
