package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/rawproto"
	"github.com/anirudhraja/rawproto/input"
	"github.com/anirudhraja/rawproto/internal/config"
	"github.com/anirudhraja/rawproto/internal/logging"
	"github.com/anirudhraja/rawproto/wire"
)

var ErrInputTooLarge = errors.New("input exceeds max_input")

// rootOptions holds flags shared by every decoding command.
type rootOptions struct {
	configPath string
	logLevel   string

	format   string
	raw      bool
	grpc     bool
	maxDepth int
	output   string
	file     string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rawproto",
		Short: "Decode protobuf wire bytes without a schema",
		Long: `rawproto tokenizes protobuf wire-format bytes without a .proto schema.

Every field is shown with its byte range and all plausible readings of its
bits. Length-delimited payloads are speculatively decoded as nested
messages, and bytes that cannot be tokenized are kept as trailing data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel != "" && !logging.SetLevel(opts.logLevel) {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a rawproto.toml file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error|off")
	pf.StringVar(&opts.format, "format", string(input.FormatAuto), "input text format: auto|hex|base64")
	pf.BoolVar(&opts.raw, "raw", false, "treat the input as raw bytes and skip text normalization")
	pf.BoolVar(&opts.grpc, "grpc", false, "strip a 5-byte gRPC message header")
	pf.IntVar(&opts.maxDepth, "max-depth", wire.DefaultMaxDepth, "maximum nested message depth")
	pf.StringVarP(&opts.output, "output", "o", string(config.OutputTree), "output: tree|table|json")
	pf.StringVarP(&opts.file, "file", "f", "", "read input from a file instead of stdin")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newDecodeCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// resolveConfig layers defaults, the config file, RAWPROTO_* variables and
// explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		f, err := input.ParseFormat(opts.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = f
	}
	if flags.Changed("grpc") {
		cfg.GRPC = opts.grpc
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if flags.Changed("output") {
		cfg.Output = config.Output(strings.ToLower(strings.TrimSpace(opts.output)))
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// decodeInput reads the input selected by args and flags and decodes it.
func decodeInput(cmd *cobra.Command, opts *rootOptions, cfg config.Config, args []string) (*wire.ParseResult, error) {
	log := logging.Logger()
	dec := rawproto.New(rawproto.Options{
		Format:   cfg.Format,
		GRPC:     cfg.GRPC,
		MaxDepth: cfg.MaxDepth,
		Logger:   &log,
	})

	data, err := readInput(cmd, opts, cfg, args)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("bytes", len(data)).Bool("raw", opts.raw).Msg("read input")

	if opts.raw {
		return dec.Parse(data), nil
	}
	return dec.ParseText(string(data))
}

func readInput(cmd *cobra.Command, opts *rootOptions, cfg config.Config, args []string) ([]byte, error) {
	var data []byte
	switch {
	case len(args) > 0:
		data = []byte(strings.Join(args, " "))
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		if data, err = readLimited(f, cfg.MaxInput); err != nil {
			return nil, err
		}
	default:
		var err error
		if data, err = readLimited(cmd.InOrStdin(), cfg.MaxInput); err != nil {
			return nil, err
		}
	}

	if uint64(len(data)) > cfg.MaxInput {
		return nil, fmt.Errorf("%w (%s)", ErrInputTooLarge, cfg.MaxInputString())
	}
	return data, nil
}

func readLimited(r io.Reader, limit uint64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
