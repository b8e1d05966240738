package core

import (
	"strconv"
	"strings"
)

// Level is the tier threshold that gates diagnostic output
type Level int

const (
	// LevelAssertions reports failed assertions only
	LevelAssertions Level = iota
	// LevelReports adds value/message dumps and free-form formatting
	LevelReports
	// LevelCallTracing adds entry/exit tracing and depth indentation (default)
	LevelCallTracing
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelAssertions:
		return "ASSERTIONS"
	case LevelReports:
		return "REPORTS"
	case LevelCallTracing:
		return "CALLTRACING"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// Enables reports whether output gated at tier required passes at level l.
func (l Level) Enables(required Level) bool {
	return l >= required
}

// ParseLevel converts a tier name or number to a Level. Unknown names
// yield LevelCallTracing and ok == false.
func ParseLevel(s string) (level Level, ok bool) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "ASSERTIONS", "ASSERT", "ONLYASSERTS":
		return LevelAssertions, true
	case "REPORTS", "REPORT":
		return LevelReports, true
	case "CALLTRACING", "CALL-TRACING", "TRACE", "TRACING":
		return LevelCallTracing, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Level(n), true
	}
	return LevelCallTracing, false
}
