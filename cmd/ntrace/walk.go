package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/ntrace/internal/walk"
)

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [dir]",
		Short: "Trace a directory walk",
		Long:  `Walk a directory tree with every step traced at the configured level.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWalk,
	}
	cmd.Flags().Int("max-depth", 0, "maximum directory depth (0: unlimited)")
	cmd.Flags().Bool("hidden", false, "include dot entries")
	return cmd
}

func runWalk(cmd *cobra.Command, args []string) (err error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tee, _ := cmd.Flags().GetBool("tee")
	logger.Debug("config resolved",
		zap.String("level", cfg.Level),
		zap.String("policy", cfg.Assertions.Policy),
	)

	t, closer, err := buildTracer(cfg, tee, os.Stderr)
	if err != nil {
		return err
	}
	if closer != nil {
		logger.Debug("trace file opened", zap.String("path", cfg.Output), zap.Bool("tee", tee))
		defer func() { err = multierr.Append(err, closer.Close()) }()
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	hidden, _ := cmd.Flags().GetBool("hidden")

	logger.Debug("starting walk", zap.String("root", root), zap.Stringer("level", t.Level()))

	sum, err := walk.Walk(t, root, walk.Options{MaxDepth: maxDepth, Hidden: hidden})
	if err != nil {
		return err
	}

	logger.Info("walk finished",
		zap.Int("dirs", sum.Dirs),
		zap.Int("files", sum.Files),
		zap.Int64("bytes", sum.Bytes),
	)
	return nil
}
