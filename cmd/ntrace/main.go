// Command ntrace drives the tracing facility from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ntrace",
		Short:         "Leveled diagnostic tracing toolkit",
		Long:          `ntrace runs instrumented workloads through the leveled tracer and inspects tracer settings.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a TOML configuration file")
	flags.String("level", "", "trace level (assertions|reports|calltracing or 0-2)")
	flags.String("name", "", "program name printed before each trace line")
	flags.String("output", "", "trace file path (default: raw console)")
	flags.Bool("append", false, "append to the trace file instead of truncating")
	flags.Bool("confirm", false, "prompt on failed assertions when tracing to the console")
	flags.Bool("tee", false, "copy file output to stderr")
	flags.BoolP("verbose", "v", false, "log debug messages")

	rootCmd.AddCommand(newWalkCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := newLogger(false)
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
