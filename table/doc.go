// Package table holds the tabular side of ingestion: a Frame of labeled
// columns over rows of untyped cells, Selectors that pick a column by label
// or by position, and a CSV loader.
//
// A bipartite table has one row per (node, edge) incidence; convert.FromTable
// reads the two selected columns of every row.
package table
