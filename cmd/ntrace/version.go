package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version can be overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var versionColor = color.New(color.FgYellow, color.Bold)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			versionColor.Fprintf(cmd.OutOrStdout(), "ntrace %s\n", Version)
		},
	}
}
