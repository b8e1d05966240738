package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ntrace/config"
	"github.com/philipp01105/ntrace/handler/filehandler"
	"github.com/philipp01105/ntrace/handler/multihandler"
	"github.com/philipp01105/ntrace/tracer"
)

// newLogger returns the operational logger. Trace output never goes
// through it.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig resolves settings from the config file, the environment and
// flags, in increasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	} else if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	if flags.Changed("level") {
		cfg.Level, _ = flags.GetString("level")
	}
	if flags.Changed("name") {
		cfg.ProgramName, _ = flags.GetString("name")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("append") {
		cfg.Append, _ = flags.GetBool("append")
	}
	if flags.Changed("confirm") {
		if confirm, _ := flags.GetBool("confirm"); confirm {
			cfg.Assertions.Policy = "confirm"
		} else {
			cfg.Assertions.Policy = "report"
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// buildTracer creates the tracer for cfg. With tee set and a trace file
// configured, output also goes to stderr. The returned closer is nil when
// tracing to the console.
func buildTracer(cfg config.Config, tee bool, stderr io.Writer) (*tracer.Tracer, io.Closer, error) {
	t, closer, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	if tee && closer != nil {
		t.SetDestination(multihandler.NewMultiDestination(
			t.Destination(),
			filehandler.Wrap(stderr),
		))
	}
	return t, closer, nil
}
