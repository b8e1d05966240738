// Package config loads tracer settings from a TOML file and builds a
// Tracer from them.
//
// Example file:
//
//	level = "reports"
//	program_name = "smbfs"
//	output = "/tmp/smbfs-trace.log"
//	append = true
//	buffer_size = 8192
//	flush_interval = "5s"
//
//	[assertions]
//	policy = "confirm"
//	waiter = "terminal"
//
// The NTRACE_LEVEL environment variable overrides the file's level.
package config
