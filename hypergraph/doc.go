// Package hypergraph provides the canonical in-memory hypergraph used by the
// rest of hyperlath.
//
// A hyperedge may hold any number of nodes. The container keeps two dual
// views of the same incidence relation:
//
//	nodes: node id → Set of edge ids it belongs to
//	edges: edge id → Set of node ids it contains
//
// plus an attribute record (Attrs) per node, per edge, and for the graph.
// Node and edge ids are any comparable Go type, chosen independently:
// Hypergraph[int, int] for matrix-derived graphs, Hypergraph[string, string]
// for decoded documents, and so on.
//
// Mutators:
//
//	AddIncidence(n, e)         // O(1): insert-if-absent on both sides
//	AddEdge(id, members)       // O(k): ErrDuplicateEdge on reuse
//	AddEdgesFrom(edges, ids)   // bulk add, ids assigned per position
//	SetNodeAttr / SetEdgeAttr / SetAttr
//	Clear(), Replace(src)
//
// Assemble(nodes, edges) adopts two prebuilt maps in one step and validates
// them, for builders that derive one view from the other.
//
// Queries return copies (Members, Memberships, NodeMap, EdgeMap), except the
// attribute getters which return the live record for in-place edits.
//
// Copy() duplicates both membership maps and every set inside them, so the
// copy can be mutated freely; attribute values are shared.
//
// Validate() re-checks duality and attribute coverage and is what the tests
// use to assert every conversion path.
//
// Errors:
//
//	ErrDuplicateEdge     – AddEdge with an existing id
//	ErrMalformedEdge     – bulk-add entry with no usable id
//	ErrDualityViolation  – the two mappings disagree
//	ErrMissingAttrs      – a node or edge lacks an attribute record
package hypergraph
