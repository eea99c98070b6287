package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/anirudhraja/rawproto"
	"github.com/anirudhraja/rawproto/internal/config"
	"github.com/anirudhraja/rawproto/view"
	"github.com/anirudhraja/rawproto/wire"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [input]",
		Short: "Decode hex, base64 or raw protobuf bytes",
		Example: `  rawproto decode 089601
  echo CJYB | rawproto decode --format base64 -o json
  rawproto decode --raw --file message.bin -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				pterm.DisableColor()
			}

			result, err := decodeInput(cmd, opts, cfg, args)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, result)
		},
	}
}

func render(w io.Writer, output config.Output, r *wire.ParseResult) error {
	switch output {
	case config.OutputJSON:
		data, err := rawproto.ExportJSON(r)
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.OutputTable:
		return renderTable(w, r)
	default:
		return renderTree(w, r)
	}
}

// ===== TREE =====

func renderTree(w io.Writer, r *wire.ParseResult) error {
	fmt.Fprintf(w, "message (%d bytes, %d fields)\n", r.Size(), len(r.Fields))

	nodes := view.Tree(r)
	if len(nodes) == 0 {
		return nil
	}
	out, err := pterm.DefaultTree.WithRoot(pterm.TreeNode{Children: treeNodes(nodes)}).Srender()
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func treeNodes(nodes []view.Node) []pterm.TreeNode {
	out := make([]pterm.TreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, pterm.TreeNode{
			Text:     nodeText(n),
			Children: treeNodes(n.Children),
		})
	}
	return out
}

func nodeText(n view.Node) string {
	if n.Kind == view.NodeTrailing {
		text := fmt.Sprintf("trailing %s %s", n.Range, n.Primary.Text)
		if n.Note != "" {
			text += pterm.Gray(" (" + n.Note + ")")
		}
		return pterm.Red(text)
	}

	text := fmt.Sprintf("%s %s %s %s %s",
		pterm.Cyan(n.Number), n.WireType, pterm.Gray(n.Range), n.Primary.Kind, n.Primary.Text)
	if len(n.Alternatives) > 0 {
		alts := make([]string, 0, len(n.Alternatives))
		for _, a := range n.Alternatives {
			alts = append(alts, string(a.Kind)+" "+a.Text)
		}
		text += pterm.Gray(" | " + strings.Join(alts, ", "))
	}
	return text
}

// ===== TABLE =====

func renderTable(w io.Writer, r *wire.ParseResult) error {
	for _, t := range view.BuildTable(r).Tables() {
		fmt.Fprintln(w, tableTitle(t.Path))

		data := pterm.TableData{{"#", "wire type", "range", "kind", "value"}}
		for _, row := range t.Rows {
			value := row.Value
			if row.Sub != nil {
				value += " see " + tableTitle(row.Sub.Path)
			}
			data = append(data, []string{
				strconv.FormatUint(uint64(row.Number), 10),
				row.WireType,
				row.Range.String(),
				string(row.Kind),
				value,
			})
		}

		out, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		fmt.Fprintln(w, out)

		if t.Trailing != "" {
			fmt.Fprintf(w, "trailing %s %s\n", t.TrailingRange, t.Trailing)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func tableTitle(path []wire.FieldNumber) string {
	if len(path) == 0 {
		return "message"
	}
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return "field " + strings.Join(parts, ".")
}
