// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// options.go — functional options shared by the decoders.

package codec

import (
	"strconv"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/table"
)

// Option configures a decoder call.
type Option func(*options)

type options struct {
	edgeIDs hypergraph.IDFunc[string]
	nodeCol table.Selector
	edgeCol table.Selector
	header  bool
}

// DefaultEdgeID names the i-th entry of a YAML edge list: "e0", "e1", ...
func DefaultEdgeID(idx int) string {
	return "e" + strconv.Itoa(idx)
}

func newOptions(opts ...Option) options {
	o := options{
		edgeIDs: DefaultEdgeID,
		nodeCol: table.Pos(0),
		edgeCol: table.Pos(1),
		header:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEdgeIDs sets the id scheme for YAML edge lists. Panics on nil.
func WithEdgeIDs(fn hypergraph.IDFunc[string]) Option {
	if fn == nil {
		panic("codec: WithEdgeIDs(nil)")
	}

	return func(o *options) { o.edgeIDs = fn }
}

// WithColumns selects the node and edge columns of a CSV table.
// Defaults: positions 0 and 1.
func WithColumns(nodeCol, edgeCol table.Selector) Option {
	return func(o *options) {
		o.nodeCol = nodeCol
		o.edgeCol = edgeCol
	}
}

// WithoutHeader treats the first CSV record as data.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}
