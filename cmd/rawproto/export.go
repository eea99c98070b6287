package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/anirudhraja/rawproto"
	"github.com/anirudhraja/rawproto/internal/logging"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [input]",
		Short: "Write the canonical JSON of a decoded message",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			result, err := decodeInput(cmd, opts, cfg, args)
			if err != nil {
				return err
			}
			data, err := rawproto.ExportJSON(result)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			data = append(data, '\n')

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			log := logging.Logger()
			log.Info().
				Str("path", out).
				Str("size", humanize.Bytes(uint64(len(data)))).
				Int("fields", len(result.Fields)).
				Msg("exported canonical json")
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rawproto version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rawproto", version)
		},
	}
}
