// Package convert is the incidence normalizer: it turns edge lists,
// edge dictionaries, bipartite tables, incidence matrices and existing
// hypergraphs into a hypergraph.Hypergraph whose node and edge views are
// guaranteed dual.
//
// Inputs form a closed set of variants built by constructor functions:
//
//	None[N, E]()                          → empty hypergraph
//	FromHypergraph(h)                     → copy of h
//	FromEdgeList(edges)                   → edge i has id i
//	FromEdgeListIDs(edges, ids)           → edge i has id ids(i)
//	FromEdgeDict(m) / FromEdgeSets(m)     → explicit edge ids
//	FromTable(frame, nodeCol, edgeCol)    → one incidence per row
//	FromMatrix(m)                         → row = node, column = edge
//	FromMatrixLabeled(m, rows, cols)      → labeled rows and columns
//
// Convert dispatches on the variant and always returns the populated
// Hypergraph (or nil and an error). FromValue and ConvertValue accept an
// untyped value and pick the variant from its runtime shape, failing with
// ErrUnsupportedInput for anything unrecognized.
//
// ToIncidence goes the other way: a pattern COO with sorted row and column
// labels, which FromMatrixLabeled reads back.
//
// Every builder creates an empty attribute record for every node and edge it
// discovers, so Hypergraph.Validate holds for every successful result.
//
// Example:
//
//	h, err := convert.Convert(convert.FromEdgeDict(map[string][]int{
//		"e1": {1, 2},
//		"e2": {2, 3},
//	}))
//	// h.Memberships(2) → {e1, e2}
package convert
