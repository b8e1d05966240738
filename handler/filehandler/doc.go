// Package filehandler provides the buffered destination sink and the
// helpers that produce destination handles.
//
// Buffered renders trace text into any handler.Destination and forwards
// Flush to the destination's Sync. Destinations are zap write syncers:
// Wrap turns a plain io.Writer into one, and Open creates a file-backed
// destination on top of zapcore.BufferedWriteSyncer.
//
// The sink never opens or closes a destination. Whoever obtained the
// handle from Open owns it and must Close it.
package filehandler
