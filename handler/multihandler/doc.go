// Package multihandler provides a destination handle that fans every
// write and sync out to several child destinations.
package multihandler
