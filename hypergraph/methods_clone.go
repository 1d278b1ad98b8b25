// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// File: methods_clone.go
// Role: copying, clearing and storage hand-over.
// Copy semantics:
//   - Membership maps and every membership set are duplicated.
//   - Attribute records are new maps; the values inside them are shared.

package hypergraph

// Copy returns a Hypergraph with the same memberships and attributes.
// Mutating the copy's membership sets never affects h. Attribute records are
// copied one level deep: adding a key to the copy's record is invisible to h,
// but a pointer or slice stored as a value is shared.
// Complexity: O(V + E + I).
func (h *Hypergraph[N, E]) Copy() *Hypergraph[N, E] {
	return &Hypergraph[N, E]{
		nodes:     cloneMembership(h.nodes),
		edges:     cloneMembership(h.edges),
		nodeAttrs: cloneRecords(h.nodeAttrs),
		edgeAttrs: cloneRecords(h.edgeAttrs),
		attrs:     cloneAttrs(h.attrs),
	}
}

// Clear drops every node, edge and attribute, graph-level ones included.
// Complexity: O(1) (maps are reallocated, not drained).
func (h *Hypergraph[N, E]) Clear() {
	h.nodes = make(map[N]Set[E])
	h.edges = make(map[E]Set[N])
	h.nodeAttrs = make(map[N]Attrs)
	h.edgeAttrs = make(map[E]Attrs)
	h.attrs = make(Attrs)
}

// Replace discards the receiver's contents and takes over src's storage.
// src must not be used afterwards; it is left empty.
// Complexity: O(1).
func (h *Hypergraph[N, E]) Replace(src *Hypergraph[N, E]) {
	if src == nil || src == h {
		return
	}
	h.nodes, h.edges = src.nodes, src.edges
	h.nodeAttrs, h.edgeAttrs = src.nodeAttrs, src.edgeAttrs
	h.attrs = src.attrs
	src.Clear()
}

func cloneAttrs(a Attrs) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

func cloneRecords[K comparable](m map[K]Attrs) map[K]Attrs {
	out := make(map[K]Attrs, len(m))
	for k, a := range m {
		out[k] = cloneAttrs(a)
	}

	return out
}
