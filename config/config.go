package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/philipp01105/ntrace/confirm"
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler/filehandler"
	"github.com/philipp01105/ntrace/tracer"
)

// EnvLevel names the environment variable that overrides Level
const EnvLevel = "NTRACE_LEVEL"

// Config holds tracer settings
type Config struct {
	// Level is a tier name or number (default: "calltracing")
	Level string `toml:"level"`
	// ProgramName is the tag printed before each line
	ProgramName string `toml:"program_name"`
	// Output is a trace file path; empty means the raw console
	Output string `toml:"output"`
	// Append keeps existing file content
	Append bool `toml:"append"`
	// BufferSize is the file write buffer size in bytes (default: 4096)
	BufferSize int `toml:"buffer_size"`
	// FlushInterval is the background file flush period (default: 30s)
	FlushInterval Duration `toml:"flush_interval"`
	// Assertions configures failed-assertion handling
	Assertions AssertionConfig `toml:"assertions"`
}

// AssertionConfig configures failed-assertion handling
type AssertionConfig struct {
	// Policy is "report" (default) or "confirm"
	Policy string `toml:"policy"`
	// Waiter is "auto" (default), "signal" or "terminal"
	Waiter string `toml:"waiter"`
}

// Duration is a time.Duration decoded from a TOML string like "5s"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration of a default tracer
func Default() Config {
	return Config{
		Level: core.LevelCallTracing.String(),
		Assertions: AssertionConfig{
			Policy: "report",
			Waiter: "auto",
		},
	}
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Assertions.Policy == "" {
		cfg.Assertions.Policy = def.Assertions.Policy
	}
	if cfg.Assertions.Waiter == "" {
		cfg.Assertions.Waiter = def.Assertions.Waiter
	}
}

// Load reads path, applies defaults and the environment override, and
// validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	applyDefaults(&cfg)
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies the environment override using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLevel); ok && v != "" {
		if _, valid := core.ParseLevel(v); !valid {
			return fmt.Errorf("%s: invalid level %q", EnvLevel, v)
		}
		c.Level = v
	}
	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if _, ok := core.ParseLevel(c.Level); !ok {
		return fmt.Errorf("invalid level %q", c.Level)
	}
	if _, err := parsePolicy(c.Assertions.Policy); err != nil {
		return err
	}
	switch c.Assertions.Waiter {
	case "", "auto", "signal", "terminal":
	default:
		return fmt.Errorf("invalid assertion waiter %q", c.Assertions.Waiter)
	}
	if c.BufferSize < 0 {
		return errors.New("buffer_size must not be negative")
	}
	return nil
}

// parsePolicy maps a policy name to an AssertionPolicy
func parsePolicy(s string) (tracer.AssertionPolicy, error) {
	switch strings.ToLower(s) {
	case "", "report":
		return tracer.ReportOnly, nil
	case "confirm":
		return tracer.InteractiveConfirm, nil
	default:
		return tracer.ReportOnly, fmt.Errorf("invalid assertion policy %q", s)
	}
}

// newWaiter creates the configured signal source. It is only called
// for the confirm policy.
func newWaiter(name string) (confirm.Waiter, error) {
	switch name {
	case "signal":
		return confirm.NewSignalWaiter(), nil
	case "terminal":
		w, err := confirm.NewTerminalWaiter(os.Stdin)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, nil // confirm.Auto on first prompt
	}
}

// Build creates a Tracer from the configuration. When Output is set the
// trace file is opened and returned as the io.Closer; the caller must
// close it after the last trace call. The closer is nil otherwise.
func (c Config) Build() (*tracer.Tracer, io.Closer, error) {
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	level, _ := core.ParseLevel(c.Level)
	policy, _ := parsePolicy(c.Assertions.Policy)

	b := tracer.NewBuilder().
		WithLevel(level).
		WithProgramName(c.ProgramName).
		WithAssertionPolicy(policy)

	if policy == tracer.InteractiveConfirm {
		w, err := newWaiter(c.Assertions.Waiter)
		if err != nil {
			return nil, nil, fmt.Errorf("assertion waiter: %w", err)
		}
		if w != nil {
			b.WithWaiter(w)
		}
	}

	if c.Output == "" {
		return b.Build(), nil, nil
	}

	f, err := filehandler.Open(filehandler.FileConfig{
		Filename:      c.Output,
		Append:        c.Append,
		BufferSize:    c.BufferSize,
		FlushInterval: c.FlushInterval.Duration,
	})
	if err != nil {
		return nil, nil, err
	}
	return b.WithDestination(f).Build(), f, nil
}
