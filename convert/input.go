// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// File: input.go
// Role: the closed set of accepted input shapes.
// Each variant carries its shape-specific payload; Convert dispatches with a
// type switch over exactly these variants.
// AI-HINT (file):
//   - The sealed method mentions N and E, so a variant built for one id pair
//     never satisfies Input for another (FromValue relies on this).

package convert

import (
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/matrix"
	"github.com/katalvlaran/hyperlath/table"
)

// Kind names an input shape.
type Kind int

// Input shapes.
const (
	KindNone Kind = iota
	KindHypergraph
	KindEdgeList
	KindEdgeDict
	KindTable
	KindMatrix
)

var kindNames = [...]string{
	KindNone:       "none",
	KindHypergraph: "hypergraph",
	KindEdgeList:   "edge-list",
	KindEdgeDict:   "edge-dict",
	KindTable:      "table",
	KindMatrix:     "matrix",
}

// String returns the lowercase shape name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Input is one of the accepted source shapes for a Hypergraph[N, E].
// Values are produced only by the constructors in this file.
type Input[N, E comparable] interface {
	Kind() Kind
	sealed(N, E)
}

type noneInput[N, E comparable] struct{}

type graphInput[N, E comparable] struct {
	src *hypergraph.Hypergraph[N, E]
}

type listInput[N, E comparable] struct {
	edges [][]N
	ids   hypergraph.IDFunc[E]
}

type dictInput[N, E comparable] struct {
	lists map[E][]N
	sets  map[E]hypergraph.Set[N]
}

type tableInput[N, E comparable] struct {
	frame            *table.Frame
	nodeCol, edgeCol table.Selector
}

type matrixInput[N, E comparable] struct {
	m         matrix.Incidence
	labeled   bool
	rowLabels []N
	colLabels []E
	node      func(int) N
	edge      func(int) E
}

func (noneInput[N, E]) Kind() Kind   { return KindNone }
func (graphInput[N, E]) Kind() Kind  { return KindHypergraph }
func (listInput[N, E]) Kind() Kind   { return KindEdgeList }
func (dictInput[N, E]) Kind() Kind   { return KindEdgeDict }
func (tableInput[N, E]) Kind() Kind  { return KindTable }
func (matrixInput[N, E]) Kind() Kind { return KindMatrix }

func (noneInput[N, E]) sealed(N, E)   {}
func (graphInput[N, E]) sealed(N, E)  {}
func (listInput[N, E]) sealed(N, E)   {}
func (dictInput[N, E]) sealed(N, E)   {}
func (tableInput[N, E]) sealed(N, E)  {}
func (matrixInput[N, E]) sealed(N, E) {}

// None is the "no data" input: Convert returns an empty Hypergraph.
func None[N, E comparable]() Input[N, E] {
	return noneInput[N, E]{}
}

// FromHypergraph copies an existing Hypergraph (see Hypergraph.Copy for the
// exact depth). A nil source is an unsupported input.
func FromHypergraph[N, E comparable](h *hypergraph.Hypergraph[N, E]) Input[N, E] {
	return graphInput[N, E]{src: h}
}

// FromEdgeList treats each element as one hyperedge; edge i gets id i.
func FromEdgeList[N comparable](edges [][]N) Input[N, int] {
	return listInput[N, int]{edges: edges, ids: hypergraph.Positional}
}

// FromEdgeListIDs treats each element as one hyperedge; edge i gets ids(i).
func FromEdgeListIDs[N, E comparable](edges [][]N, ids hypergraph.IDFunc[E]) Input[N, E] {
	return listInput[N, E]{edges: edges, ids: ids}
}

// FromEdgeDict maps explicit edge ids to their members. The map is copied
// during conversion; later edits to it do not reach the Hypergraph.
func FromEdgeDict[N, E comparable](edges map[E][]N) Input[N, E] {
	return dictInput[N, E]{lists: edges}
}

// FromEdgeSets is FromEdgeDict for set-valued members.
func FromEdgeSets[N, E comparable](edges map[E]hypergraph.Set[N]) Input[N, E] {
	return dictInput[N, E]{sets: edges}
}

// FromTable reads one (node, edge) incidence per row of frame from the two
// selected columns.
func FromTable[N, E comparable](frame *table.Frame, nodeCol, edgeCol table.Selector) Input[N, E] {
	return tableInput[N, E]{frame: frame, nodeCol: nodeCol, edgeCol: edgeCol}
}

// FromMatrix reads an incidence matrix: row i is node i, column j is edge j.
func FromMatrix(m matrix.Incidence) Input[int, int] {
	return matrixInput[int, int]{m: m, node: identity, edge: identity}
}

// FromMatrixLabeled reads an incidence matrix and names row i rowLabels[i]
// and column j colLabels[j]. Label counts must equal the matrix dimensions.
func FromMatrixLabeled[N, E comparable](m matrix.Incidence, rowLabels []N, colLabels []E) Input[N, E] {
	return matrixInput[N, E]{
		m:         m,
		labeled:   true,
		rowLabels: rowLabels,
		colLabels: colLabels,
		node:      func(i int) N { return rowLabels[i] },
		edge:      func(j int) E { return colLabels[j] },
	}
}

func identity(i int) int { return i }
