// Package hyperlath normalizes hypergraph data into one in-memory shape:
// a node→edges map and an edge→nodes map kept in lock-step, plus attribute
// records for the graph, every node and every edge.
//
// 🚀 What goes in?
//
//	• Edge lists        [][]N, ids 0..m-1 (or any IDFunc)
//	• Edge dicts        map[E][]N, map[E]Set[N]
//	• Bipartite tables  two columns of a table.Frame, by label or position
//	• Incidence         Dense, COO, CSR, CSC, LIL, roaring Bitmap
//	• Hypergraphs       copied, attributes included
//
// ✨ Layout:
//
//	hypergraph/     — Hypergraph[N, E], Set[T], Assemble, Validate
//	convert/        — Input variants, Convert, FromValue, Dual
//	matrix/         — incidence encodings, all lowering to COO
//	table/          — Frame, Selector, ReadCSV
//	codec/          — YAML / HCL / CSV readers, YAML writer
//	builder/        — deterministic and seeded fixtures
//	cmd/hyperconv/  — command-line front end
//
// Quick example:
//
//	h, err := convert.Convert(convert.FromEdgeDict(map[string][]string{
//		"lunch": {"ann", "bob"},
//	}))
//	// h.Memberships("ann") → {lunch}
//
//	go get github.com/katalvlaran/hyperlath
package hyperlath
