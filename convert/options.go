// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// options.go — functional options for Convert.
//
// Contract:
//   • Option constructors panic on nil arguments (programmer error).
//   • Convert itself never panics on user input.

package convert

import "github.com/katalvlaran/hyperlath/hypergraph"

// Option configures a single Convert call.
type Option[N, E comparable] func(*config[N, E])

type config[N, E comparable] struct {
	target *hypergraph.Hypergraph[N, E]
	attrs  hypergraph.Attrs
}

// WithTarget makes Convert clear h and repopulate it instead of allocating a
// new Hypergraph. h is only touched once the conversion succeeded; on error
// it keeps its previous contents. Panics on nil.
func WithTarget[N, E comparable](h *hypergraph.Hypergraph[N, E]) Option[N, E] {
	if h == nil {
		panic("convert: WithTarget(nil)")
	}

	return func(c *config[N, E]) { c.target = h }
}

// WithAttrs sets graph-level attributes on the result, after any attributes
// carried over by the copy path. Panics on nil.
func WithAttrs[N, E comparable](attrs hypergraph.Attrs) Option[N, E] {
	if attrs == nil {
		panic("convert: WithAttrs(nil)")
	}

	return func(c *config[N, E]) { c.attrs = attrs }
}

func newConfig[N, E comparable](opts ...Option[N, E]) config[N, E] {
	var c config[N, E]
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
