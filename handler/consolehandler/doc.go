// Package consolehandler provides the direct console sink: trace text is
// pushed one byte at a time into a raw console writer, the way a debug
// serial port or kernel console primitive accepts characters.
//
// NUL bytes are suppressed and never forwarded. The console is treated
// as immediate, so Flush does nothing.
package consolehandler
