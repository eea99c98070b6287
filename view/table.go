package view

import (
	"encoding/hex"

	"github.com/anirudhraja/rawproto/wire"
)

// Table is a flat list of rows for one message. Nested messages are not
// inlined; their rows live in a sub-table referenced from the row.
type Table struct {
	// Path lists the field numbers leading to this message from the root.
	Path []wire.FieldNumber `json:"path,omitempty"`

	Rows []Row `json:"rows"`

	Trailing      string         `json:"trailing,omitempty"`
	TrailingRange wire.ByteRange `json:"trailing_range"`
}

// Row is one field of a Table.
type Row struct {
	Number   wire.FieldNumber `json:"number"`
	WireType string           `json:"wire_type"`
	Range    wire.ByteRange   `json:"range"`
	Kind     wire.Kind        `json:"kind"`
	Value    string           `json:"value"`
	Sub      *Table           `json:"sub,omitempty"`
}

// BuildTable projects the result into a table with sub-tables for nested
// messages.
func BuildTable(r *wire.ParseResult) *Table {
	return buildTable(r, nil)
}

func buildTable(r *wire.ParseResult, path []wire.FieldNumber) *Table {
	t := &Table{
		Path:          path,
		Rows:          make([]Row, 0, len(r.Fields)),
		TrailingRange: r.TrailingRange,
	}
	if len(r.Trailing) > 0 {
		t.Trailing = hex.EncodeToString(r.Trailing)
	}

	for _, f := range r.Fields {
		primary := f.Primary()
		row := Row{
			Number:   f.Number,
			WireType: f.WireType.String(),
			Range:    f.Range,
			Kind:     primary.Kind,
			Value:    primary.String(),
		}
		if f.Nested != nil {
			sub := make([]wire.FieldNumber, len(path), len(path)+1)
			copy(sub, path)
			row.Sub = buildTable(f.Nested, append(sub, f.Number))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Tables returns the table and all of its sub-tables in depth-first order.
func (t *Table) Tables() []*Table {
	out := []*Table{t}
	for _, row := range t.Rows {
		if row.Sub != nil {
			out = append(out, row.Sub.Tables()...)
		}
	}
	return out
}
