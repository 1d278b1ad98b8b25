// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// File: methods.go
// Role: incidence mutators and read-only queries.
// Determinism:
//   - Nodes()/Edges() return ids in map order; sort at the call site if needed.
//   - Members/Memberships/NodeMap/EdgeMap return copies, never live sets.

package hypergraph

import "fmt"

// ensureNode inserts an empty membership set and attribute record for n
// when n is not yet known. Returns the live membership set.
func (h *Hypergraph[N, E]) ensureNode(n N) Set[E] {
	s, ok := h.nodes[n]
	if !ok {
		s = make(Set[E])
		h.nodes[n] = s
	}
	if _, ok = h.nodeAttrs[n]; !ok {
		h.nodeAttrs[n] = make(Attrs)
	}

	return s
}

// ensureEdge is the edge-side twin of ensureNode.
func (h *Hypergraph[N, E]) ensureEdge(e E) Set[N] {
	s, ok := h.edges[e]
	if !ok {
		s = make(Set[N])
		h.edges[e] = s
	}
	if _, ok = h.edgeAttrs[e]; !ok {
		h.edgeAttrs[e] = make(Attrs)
	}

	return s
}

// AddIncidence records that node n belongs to edge e, creating either side
// (and its empty attribute record) on first sight. Idempotent. Like a map
// insert, it panics on ids that are not Hashable; AddEdge checks instead.
// Complexity: O(1) amortized.
func (h *Hypergraph[N, E]) AddIncidence(n N, e E) {
	h.ensureNode(n).Add(e)
	h.ensureEdge(e).Add(n)
}

// AddEdge creates edge id with the given members. An empty members slice
// creates an empty edge.
//
// Errors:
//   - ErrMalformedEdge when id or a member is not Hashable; nothing is added.
//   - ErrDuplicateEdge when id already exists.
//
// Complexity: O(len(members)).
func (h *Hypergraph[N, E]) AddEdge(id E, members []N) error {
	if !Hashable(id) {
		return fmt.Errorf("AddEdge: unhashable id %T: %w", id, ErrMalformedEdge)
	}
	for i, n := range members {
		if !Hashable(n) {
			return fmt.Errorf("AddEdge(%v): member %d: unhashable %T: %w", id, i, n, ErrMalformedEdge)
		}
	}
	if _, ok := h.edges[id]; ok {
		return fmt.Errorf("AddEdge(%v): %w", id, ErrDuplicateEdge)
	}
	h.ensureEdge(id)
	for _, n := range members {
		h.AddIncidence(n, id)
	}

	return nil
}

// AddEdgesFrom adds every entry of edges as a new edge whose id is ids(i).
//
// Errors:
//   - ErrMalformedEdge when ids is nil, or entry i has an unhashable id or
//     member, or ids(i) names an existing edge.
//
// Entries before the failing one remain applied; there is no rollback.
// Complexity: O(Σ|edges[i]|).
func (h *Hypergraph[N, E]) AddEdgesFrom(edges [][]N, ids IDFunc[E]) error {
	if ids == nil {
		return fmt.Errorf("AddEdgesFrom: nil id scheme: %w", ErrMalformedEdge)
	}
	for i, members := range edges {
		if err := h.AddEdge(ids(i), members); err != nil {
			return fmt.Errorf("AddEdgesFrom: entry %d: %w: %w", i, ErrMalformedEdge, err)
		}
	}

	return nil
}

// HasNode reports whether n belongs to at least one edge.
func (h *Hypergraph[N, E]) HasNode(n N) bool {
	_, ok := h.nodes[n]
	return ok
}

// HasEdge reports whether edge e exists (possibly empty).
func (h *Hypergraph[N, E]) HasEdge(e E) bool {
	_, ok := h.edges[e]
	return ok
}

// Members returns a copy of the node set of edge e, and false if e is unknown.
func (h *Hypergraph[N, E]) Members(e E) (Set[N], bool) {
	s, ok := h.edges[e]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// Memberships returns a copy of the edge set of node n, and false if n is unknown.
func (h *Hypergraph[N, E]) Memberships(n N) (Set[E], bool) {
	s, ok := h.nodes[n]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// NumNodes returns the number of nodes.
func (h *Hypergraph[N, E]) NumNodes() int {
	return len(h.nodes)
}

// NumEdges returns the number of edges, empty ones included.
func (h *Hypergraph[N, E]) NumEdges() int {
	return len(h.edges)
}

// Nodes returns every node id in unspecified order.
func (h *Hypergraph[N, E]) Nodes() []N {
	out := make([]N, 0, len(h.nodes))
	for n := range h.nodes {
		out = append(out, n)
	}

	return out
}

// Edges returns every edge id in unspecified order.
func (h *Hypergraph[N, E]) Edges() []E {
	out := make([]E, 0, len(h.edges))
	for e := range h.edges {
		out = append(out, e)
	}

	return out
}

// NodeMap returns a deep copy of the node→edges mapping.
// Complexity: O(V + I) where I is the number of incidences.
func (h *Hypergraph[N, E]) NodeMap() map[N]Set[E] {
	return cloneMembership(h.nodes)
}

// EdgeMap returns a deep copy of the edge→nodes mapping.
func (h *Hypergraph[N, E]) EdgeMap() map[E]Set[N] {
	return cloneMembership(h.edges)
}

// NodeAttrs returns the live attribute record of n.
func (h *Hypergraph[N, E]) NodeAttrs(n N) (Attrs, bool) {
	a, ok := h.nodeAttrs[n]
	return a, ok
}

// EdgeAttrs returns the live attribute record of e.
func (h *Hypergraph[N, E]) EdgeAttrs(e E) (Attrs, bool) {
	a, ok := h.edgeAttrs[e]
	return a, ok
}

// Attrs returns the live graph-level attribute record.
func (h *Hypergraph[N, E]) Attrs() Attrs {
	return h.attrs
}

// SetNodeAttr sets key on node n. Returns false if n is unknown.
func (h *Hypergraph[N, E]) SetNodeAttr(n N, key string, v any) bool {
	a, ok := h.nodeAttrs[n]
	if ok {
		a[key] = v
	}

	return ok
}

// SetEdgeAttr sets key on edge e. Returns false if e is unknown.
func (h *Hypergraph[N, E]) SetEdgeAttr(e E, key string, v any) bool {
	a, ok := h.edgeAttrs[e]
	if ok {
		a[key] = v
	}

	return ok
}

// SetAttr sets a graph-level attribute.
func (h *Hypergraph[N, E]) SetAttr(key string, v any) {
	h.attrs[key] = v
}

// cloneMembership copies the outer map and every inner set.
func cloneMembership[K, V comparable](m map[K]Set[V]) map[K]Set[V] {
	out := make(map[K]Set[V], len(m))
	for k, s := range m {
		out[k] = s.Clone()
	}

	return out
}
