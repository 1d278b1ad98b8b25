// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// types.go — Hypergraph container, attribute records and the constructor.
//
// Storage (all maps owned by the container):
//   nodes[n]     = Set of edge ids incident to n
//   edges[e]     = Set of node ids contained in e
//   nodeAttrs[n] = attribute record of n (created on first sight of n)
//   edgeAttrs[e] = attribute record of e (created on first sight of e)
//   attrs        = graph-level attributes
//
// AI-HINT (file):
//   - The two membership maps are duals; every mutator updates both sides.
//   - The container is not safe for concurrent mutation; guard it externally.

package hypergraph

// Attrs is an attribute record. Values are never deep-copied by this package.
type Attrs map[string]any

// IDFunc assigns an edge id to the entry at position idx of a bulk add.
// It must be pure: the same idx always yields the same id.
type IDFunc[E comparable] func(idx int) E

// Positional is the IDFunc for integer edge ids: entry i becomes edge i.
func Positional(idx int) int {
	return idx
}

// Hypergraph stores a hypergraph as two dual membership mappings plus
// attribute stores for nodes, edges and the graph itself.
//
// Invariants (checked by Validate):
//   - n ∈ edges[e] ⇔ e ∈ nodes[n].
//   - n is a key of nodes iff it belongs to at least one edge.
//   - every key of nodes/edges has a record in nodeAttrs/edgeAttrs.
type Hypergraph[N, E comparable] struct {
	nodes     map[N]Set[E]
	edges     map[E]Set[N]
	nodeAttrs map[N]Attrs
	edgeAttrs map[E]Attrs
	attrs     Attrs
}

// New returns an empty Hypergraph.
// Complexity: O(1).
func New[N, E comparable]() *Hypergraph[N, E] {
	return &Hypergraph[N, E]{
		nodes:     make(map[N]Set[E]),
		edges:     make(map[E]Set[N]),
		nodeAttrs: make(map[N]Attrs),
		edgeAttrs: make(map[E]Attrs),
		attrs:     make(Attrs),
	}
}
