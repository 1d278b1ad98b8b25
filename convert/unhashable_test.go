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

// Interface-typed ids accept any dynamic value; values that cannot be map
// keys must come back as errors on every path instead of panicking.

func TestConvert_Table_UnhashableCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]any
	}{
		{"slice node", [][]any{{"a", "e1"}, {[]int{1}, "e1"}}},
		{"map edge", [][]any{{"a", map[string]int{}}}},
		{"struct with slice", [][]any{{struct{ V any }{V: []byte("x")}, "e1"}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			frame, err := table.NewFrame(nil, tc.rows)
			require.NoError(t, err)

			target := hypergraph.New[any, any]()
			target.AddIncidence("keep", "old")

			var h *hypergraph.Hypergraph[any, any]
			require.NotPanics(t, func() {
				h, err = convert.Convert(
					convert.FromTable[any, any](frame, table.Pos(0), table.Pos(1)),
					convert.WithTarget(target),
				)
			})
			require.ErrorIs(t, err, convert.ErrCellType)
			assert.Nil(t, h)
			assert.True(t, target.HasNode("keep"), "target must survive a failed conversion")
		})
	}
}

func TestConvert_EdgeDict_UnhashableMember(t *testing.T) {
	t.Parallel()

	var err error
	require.NotPanics(t, func() {
		_, err = convert.ConvertValue[any, string](map[string][]any{"e": {"a", map[string]int{}}})
	})
	require.ErrorIs(t, err, hypergraph.ErrMalformedEdge)

	// hashable interface values still work
	h, err := convert.Convert(convert.FromEdgeDict(map[string][]any{"e": {"a", 1, [2]int{3, 4}}}))
	require.NoError(t, err)
	requireDual(t, h)
	assert.Equal(t, 3, h.NumNodes())
}

func TestConvert_EdgeList_Unhashable(t *testing.T) {
	t.Parallel()

	var err error
	require.NotPanics(t, func() {
		_, err = convert.Convert(convert.FromEdgeList([][]any{{"a"}, {[]string{"b"}}}))
	})
	require.ErrorIs(t, err, hypergraph.ErrMalformedEdge)

	require.NotPanics(t, func() {
		_, err = convert.Convert(convert.FromEdgeListIDs[string, any]([][]string{{"a"}}, func(int) any { return []int{0} }))
	})
	require.ErrorIs(t, err, hypergraph.ErrMalformedEdge)
}

func TestConvert_MatrixLabeled_Unhashable(t *testing.T) {
	t.Parallel()

	dense, err := matrix.NewDenseFromRows([][]float64{{1}})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, err = convert.Convert(convert.FromMatrixLabeled(dense, []any{[]int{1}}, []any{"e"}))
	})
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	require.NotPanics(t, func() {
		_, err = convert.Convert(convert.FromMatrixLabeled(dense, []any{"n"}, []any{map[int]int{}}))
	})
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)
}

func TestConvert_NilFrame(t *testing.T) {
	t.Parallel()

	_, err := convert.Convert(convert.FromTable[string, string](nil, table.Pos(0), table.Pos(1)))
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)

	_, err = convert.ConvertValue[string, string]((*table.Frame)(nil))
	require.ErrorIs(t, err, convert.ErrUnsupportedInput)
}
