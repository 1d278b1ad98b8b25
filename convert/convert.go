// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// File: convert.go
// Role: the dispatcher. One entry point, one switch, every branch returns the
//       populated Hypergraph or an error.
// Failure policy:
//   - Builders stop at the first invalid condition and return nil.
//   - A WithTarget container is only replaced after a successful build.

package convert

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/matrix"
	"github.com/katalvlaran/hyperlath/table"
)

// Convert normalizes in into a Hypergraph.
//
// Errors:
//   - ErrUnsupportedInput: nil Input, or a variant without payload.
//   - table.ErrInvalidColumns, ErrCellType, table.ErrRaggedRow: tabular input.
//   - hypergraph.ErrMalformedEdge: edge-list input.
//   - matrix sentinels: incidence input.
func Convert[N, E comparable](in Input[N, E], opts ...Option[N, E]) (*hypergraph.Hypergraph[N, E], error) {
	cfg := newConfig(opts...)

	h, err := build(in)
	if err != nil {
		return nil, fmt.Errorf("Convert(%s): %w", kindOf(in), err)
	}
	for k, v := range cfg.attrs {
		h.SetAttr(k, v)
	}
	if cfg.target != nil {
		cfg.target.Replace(h)
		return cfg.target, nil
	}

	return h, nil
}

// ConvertValue is FromValue followed by Convert.
func ConvertValue[N, E comparable](v any, opts ...Option[N, E]) (*hypergraph.Hypergraph[N, E], error) {
	in, err := FromValue[N, E](v)
	if err != nil {
		return nil, err
	}

	return Convert(in, opts...)
}

// FromValue inspects the runtime shape of v and wraps it in the matching Input:
//
//	nil                              → None
//	*hypergraph.Hypergraph[N, E]     → FromHypergraph
//	[][]N                            → FromEdgeList (E must be int)
//	map[E][]N                        → FromEdgeDict
//	map[E]hypergraph.Set[N]          → FromEdgeSets
//	*table.Frame                     → FromTable with columns 0 and 1
//	matrix.Incidence, [][]float64    → FromMatrix (N and E must be int)
//
// When N is float64, [][]float64 is read as an edge list. Anything else
// yields ErrUnsupportedInput.
func FromValue[N, E comparable](v any) (Input[N, E], error) {
	switch x := v.(type) {
	case nil:
		return None[N, E](), nil
	case *hypergraph.Hypergraph[N, E]:
		return FromHypergraph(x), nil
	case [][]N:
		if ids, ok := any(hypergraph.IDFunc[int](hypergraph.Positional)).(hypergraph.IDFunc[E]); ok {
			return FromEdgeListIDs(x, ids), nil
		}
		return nil, fmt.Errorf("FromValue(%T): edge list needs int edge ids: %w", v, ErrUnsupportedInput)
	case map[E][]N:
		return FromEdgeDict(x), nil
	case map[E]hypergraph.Set[N]:
		return FromEdgeSets(x), nil
	case *table.Frame:
		return FromTable[N, E](x, table.Pos(0), table.Pos(1)), nil
	case matrix.Incidence:
		return matrixValue[N, E](x, v)
	case [][]float64:
		d, err := matrix.NewDenseFromRows(x)
		if err != nil {
			return nil, fmt.Errorf("FromValue: %w", err)
		}
		return matrixValue[N, E](d, v)
	default:
		return nil, fmt.Errorf("FromValue(%T): %w", v, ErrUnsupportedInput)
	}
}

func matrixValue[N, E comparable](m matrix.Incidence, orig any) (Input[N, E], error) {
	if in, ok := any(FromMatrix(m)).(Input[N, E]); ok {
		return in, nil
	}

	return nil, fmt.Errorf("FromValue(%T): matrix needs int node and edge ids: %w", orig, ErrUnsupportedInput)
}

// build routes to the shape-specific builder.
func build[N, E comparable](in Input[N, E]) (*hypergraph.Hypergraph[N, E], error) {
	switch v := in.(type) {
	case noneInput[N, E]:
		return hypergraph.New[N, E](), nil
	case graphInput[N, E]:
		if v.src == nil {
			return nil, fmt.Errorf("nil hypergraph: %w", ErrUnsupportedInput)
		}
		return v.src.Copy(), nil
	case listInput[N, E]:
		return buildEdgeList(v.edges, v.ids)
	case dictInput[N, E]:
		return buildEdgeDict(v)
	case tableInput[N, E]:
		return buildTable[N, E](v.frame, v.nodeCol, v.edgeCol)
	case matrixInput[N, E]:
		return buildMatrix(v)
	default:
		return nil, ErrUnsupportedInput
	}
}

func kindOf[N, E comparable](in Input[N, E]) string {
	if in == nil {
		return "nil"
	}

	return in.Kind().String()
}
