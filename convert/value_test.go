// SPDX-License-Identifier: MIT

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/matrix"
	"github.com/katalvlaran/hyperlath/table"
)

func TestFromValue_Routing(t *testing.T) {
	t.Parallel()

	frame, err := table.NewFrame([]string{"n", "e"}, [][]any{{"a", "x"}})
	require.NoError(t, err)

	tests := []struct {
		name string
		v    any
		want convert.Kind
	}{
		{"nil", nil, convert.KindNone},
		{"hypergraph", hypergraph.New[string, string](), convert.KindHypergraph},
		{"edge dict", map[string][]string{"x": {"a"}}, convert.KindEdgeDict},
		{"edge sets", map[string]hypergraph.Set[string]{"x": set("a")}, convert.KindEdgeDict},
		{"frame", frame, convert.KindTable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in, err := convert.FromValue[string, string](tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, in.Kind())
		})
	}
}

func TestFromValue_IntShapes(t *testing.T) {
	t.Parallel()

	in, err := convert.FromValue[string, int]([][]string{{"a", "b"}, {"b"}})
	require.NoError(t, err)
	require.Equal(t, convert.KindEdgeList, in.Kind())
	h, err := convert.Convert(in)
	require.NoError(t, err)
	require.Equal(t, map[int]hypergraph.Set[string]{0: set("a", "b"), 1: set("b")}, h.EdgeMap())

	h2, err := convert.ConvertValue[int, int]([][]float64{{1, 0}, {1, 1}})
	require.NoError(t, err)
	requireDual(t, h2)
	require.Equal(t, map[int]hypergraph.Set[int]{0: set(0, 1), 1: set(1)}, h2.EdgeMap())

	lil, err := matrix.NewLILFromRows(2, [][]int{{1}, {0, 1}})
	require.NoError(t, err)
	h3, err := convert.ConvertValue[int, int](lil)
	require.NoError(t, err)
	require.Equal(t, map[int]hypergraph.Set[int]{0: set(1), 1: set(0, 1)}, h3.EdgeMap())
}

func TestFromValue_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := convert.FromValue[string, string]("not a hypergraph")
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	_, err = convert.FromValue[string, string](42)
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	// edge lists number their edges, so E must be int
	_, err = convert.FromValue[string, string]([][]string{{"a"}})
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	// matrices index both axes, so N and E must be int
	_, err = convert.FromValue[string, string]([][]float64{{1}})
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	_, err = convert.FromValue[int, int]([][]float64{{1, 0}, {1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = convert.ConvertValue[string, string](3.5)
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)
}
