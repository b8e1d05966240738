package consolehandler_test

import (
	"os"

	"github.com/philipp01105/ntrace/handler/consolehandler"
)

// Create a console sink writing raw bytes to stdout.
func ExampleNewConsoleHandler() {
	c := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: consolehandler.RawWriter(os.Stdout),
	})
	c.WriteString("smbfs.c:120:Entering mount\n")
	// Output: smbfs.c:120:Entering mount
}
