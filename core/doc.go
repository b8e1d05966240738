// Package core defines the shared types used across the ntrace packages.
//
// It provides the Level type for tier gating and the Site type that
// carries the file/line/function provenance every trace line starts
// with.
//
// Levels are ordered tiers rather than severities: a higher Level
// enables strictly more output. LevelAssertions lets only failed
// assertions through, LevelReports adds value dumps and free-form
// messages, and LevelCallTracing adds entry/exit lines and depth
// indentation.
package core
