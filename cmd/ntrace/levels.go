package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/philipp01105/ntrace/core"
)

var (
	activeColor   = color.New(color.FgGreen, color.Bold)
	enabledColor  = color.New(color.FgGreen)
	disabledColor = color.New(color.FgHiBlack)
)

var levelDescriptions = []struct {
	level core.Level
	text  string
}{
	{core.LevelAssertions, "assertion failures only"},
	{core.LevelReports, "value, pointer, string and message dumps"},
	{core.LevelCallTracing, "function entry and exit with indentation"},
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List trace levels and mark the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			active, _ := core.ParseLevel(cfg.Level)
			printLevels(cmd.OutOrStdout(), active)
			return nil
		},
	}
}

// printLevels writes one line per level; levels above active are dimmed.
func printLevels(w io.Writer, active core.Level) {
	for _, d := range levelDescriptions {
		line := fmt.Sprintf("%d %-12s %s", int(d.level), d.level, d.text)
		switch {
		case d.level == active:
			activeColor.Fprintln(w, "* "+line)
		case active.Enables(d.level):
			enabledColor.Fprintln(w, "  "+line)
		default:
			disabledColor.Fprintln(w, "  "+line)
		}
	}
}
