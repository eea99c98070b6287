// Package config resolves CLI settings from defaults, a TOML file and
// RAWPROTO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"

	"github.com/anirudhraja/rawproto/input"
	"github.com/anirudhraja/rawproto/wire"
)

const (
	EnvFormat   = "RAWPROTO_FORMAT"
	EnvGRPC     = "RAWPROTO_GRPC"
	EnvMaxDepth = "RAWPROTO_MAX_DEPTH"
	EnvOutput   = "RAWPROTO_OUTPUT"
	EnvMaxInput = "RAWPROTO_MAX_INPUT"
)

// Output selects how the CLI renders a result.
type Output string

const (
	OutputTree  Output = "tree"
	OutputTable Output = "table"
	OutputJSON  Output = "json"
)

// DefaultMaxInput caps the number of input bytes the CLI reads.
const DefaultMaxInput = 16 << 20

var (
	ErrInvalidOutput   = errors.New("config: invalid output")
	ErrInvalidMaxDepth = errors.New("config: max_depth must be positive")
	ErrInvalidMaxInput = errors.New("config: max_input must be positive")
)

// Config holds resolved CLI settings.
type Config struct {
	Format   input.Format
	GRPC     bool
	MaxDepth int
	Output   Output
	MaxInput uint64
	NoColor  bool
}

// fileConfig maps rawproto.toml keys.
type fileConfig struct {
	Format   string `toml:"format"`
	GRPC     bool   `toml:"grpc"`
	MaxDepth int    `toml:"max_depth"`
	Output   string `toml:"output"`
	MaxInput string `toml:"max_input"`
	NoColor  bool   `toml:"no_color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   input.FormatAuto,
		MaxDepth: wire.DefaultMaxDepth,
		Output:   OutputTree,
		MaxInput: DefaultMaxInput,
	}
}

// Load overlays the keys present in the TOML file at path onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		f, err := input.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg.Format = f
	}
	if meta.IsDefined("grpc") {
		cfg.GRPC = raw.GRPC
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("output") {
		cfg.Output = Output(strings.ToLower(strings.TrimSpace(raw.Output)))
	}
	if meta.IsDefined("max_input") {
		n, err := humanize.ParseBytes(raw.MaxInput)
		if err != nil {
			return Config{}, fmt.Errorf("load config: max_input: %w", err)
		}
		cfg.MaxInput = n
	}
	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from RAWPROTO_* variables. Unset or empty
// variables leave the setting unchanged.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		f, err := input.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Format = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvGRPC)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGRPC, err)
		}
		c.GRPC = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxDepth)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		c.MaxDepth = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.Output = Output(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxInput)); v != "" {
		n, err := humanize.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxInput, err)
		}
		c.MaxInput = n
	}
	return c.Validate()
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	switch c.Output {
	case OutputTree, OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w %q (expected tree|table|json)", ErrInvalidOutput, c.Output)
	}
	if c.MaxDepth <= 0 {
		return ErrInvalidMaxDepth
	}
	if c.MaxInput == 0 {
		return ErrInvalidMaxInput
	}
	return nil
}

// MaxInputString renders the input ceiling for messages.
func (c Config) MaxInputString() string {
	return humanize.IBytes(c.MaxInput)
}
