// Package view projects a wire.ParseResult into renderer-agnostic
// structures: a tree, a table with sub-tables, and canonical JSON.
package view

import (
	"encoding/hex"

	"github.com/anirudhraja/rawproto/wire"
)

// NodeKind tags tree nodes.
type NodeKind string

const (
	NodeField    NodeKind = "field"
	NodeTrailing NodeKind = "trailing"
)

// Value is an interpretation in display form.
type Value struct {
	Kind wire.Kind `json:"kind"`
	Text string    `json:"text"`
}

// Node is one entry of the tree projection.
type Node struct {
	Kind         NodeKind         `json:"kind"`
	Number       wire.FieldNumber `json:"number,omitempty"`
	WireType     string           `json:"wire_type,omitempty"`
	Range        wire.ByteRange   `json:"range"`
	Primary      Value            `json:"primary"`
	Alternatives []Value          `json:"alternatives,omitempty"`
	Children     []Node           `json:"children,omitempty"`

	// Note carries the stop reason on trailing nodes.
	Note string `json:"note,omitempty"`
}

// Tree walks the result depth-first. Nested messages become children and a
// non-empty trailing remainder becomes a final trailing node.
func Tree(r *wire.ParseResult) []Node {
	if r == nil {
		return nil
	}

	nodes := make([]Node, 0, len(r.Fields)+1)
	for _, f := range r.Fields {
		nodes = append(nodes, fieldNode(f))
	}

	if len(r.Trailing) > 0 {
		n := Node{
			Kind:    NodeTrailing,
			Range:   r.TrailingRange,
			Primary: Value{Kind: wire.KindBytes, Text: hex.EncodeToString(r.Trailing)},
		}
		if r.Stop != nil {
			n.Note = r.Stop.Error()
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func fieldNode(f *wire.Field) Node {
	n := Node{
		Kind:     NodeField,
		Number:   f.Number,
		WireType: f.WireType.String(),
		Range:    f.Range,
		Primary:  valueOf(f.Primary()),
	}
	if len(f.Interpretations) > 1 {
		n.Alternatives = make([]Value, 0, len(f.Interpretations)-1)
		for _, in := range f.Interpretations[1:] {
			n.Alternatives = append(n.Alternatives, valueOf(in))
		}
	}
	if f.Nested != nil {
		n.Children = Tree(f.Nested)
	}
	return n
}

func valueOf(in wire.Interpretation) Value {
	return Value{Kind: in.Kind, Text: in.String()}
}

// Walk visits every node depth-first with its nesting level.
func Walk(nodes []Node, fn func(n Node, level int)) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, level int, fn func(n Node, level int)) {
	for _, n := range nodes {
		fn(n, level)
		walk(n.Children, level+1, fn)
	}
}
