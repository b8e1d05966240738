// Package handler defines the Sink interface that every trace line is
// routed through and the Destination contract for caller-owned
// buffered output handles.
//
// Exactly two sink variants exist:
//
//   - consolehandler.Console writes straight to a raw byte-at-a-time
//     console writer. It never buffers, so its Flush is a no-op.
//   - filehandler.Buffered renders into a Destination (any
//     zapcore.WriteSyncer-shaped value) and forwards Flush to the
//     destination's Sync.
//
// Callers hold a Sink and never branch on which variant it is. Write
// and flush failures are not returned; they are counted in Stats so an
// integrator can inspect them after the fact.
package handler
