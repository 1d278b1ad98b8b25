// SPDX-License-Identifier: MIT

// Package matrix_test checks that every incidence encoding normalizes to the
// same coordinate form and rejects malformed input with the right sentinel.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/matrix"
)

// 3×2 incidence with non-zeros at (0,0), (1,0), (1,1).
var wantCells = [][2]int{{0, 0}, {1, 0}, {1, 1}}

// cells returns the sorted (row, col) pairs of a COO.
func cells(t *testing.T, m *matrix.COO) [][2]int {
	t.Helper()
	out := make([][2]int, 0, m.Len())
	for _, e := range m.Entries() {
		out = append(out, [2]int{e.Row, e.Col})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})

	return out
}

func sampleEncodings(t *testing.T) map[string]matrix.Incidence {
	t.Helper()

	dense, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {2.5, -1}, {0, 0}})
	require.NoError(t, err)

	coo, err := matrix.NewCOO(3, 2, []int{0, 1, 1, 2}, []int{0, 0, 1, 1}, []float64{1, 1, 1, 0})
	require.NoError(t, err)

	csr, err := matrix.NewCSR(3, 2, []int{0, 1, 3, 3}, []int{0, 0, 1}, nil)
	require.NoError(t, err)

	csc, err := matrix.NewCSC(3, 2, []int{0, 2, 3}, []int{0, 1, 1}, []float64{4, 4, 4})
	require.NoError(t, err)

	lil, err := matrix.NewLILFromRows(2, [][]int{{0}, {0, 1}, {}})
	require.NoError(t, err)

	bm, err := matrix.NewBitmap(3, 2)
	require.NoError(t, err)
	for _, c := range wantCells {
		require.NoError(t, bm.Set(c[0], c[1]))
	}

	return map[string]matrix.Incidence{
		"Dense": dense, "COO": coo, "CSR": csr, "CSC": csc, "LIL": lil, "Bitmap": bm,
	}
}

func TestEncodings_SameCoordinates(t *testing.T) {
	t.Parallel()

	for name, enc := range sampleEncodings(t) {
		name, enc := name, enc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, c := enc.Dims()
			require.Equal(t, 3, r)
			require.Equal(t, 2, c)

			coo, err := enc.ToCOO()
			require.NoError(t, err)
			require.Equal(t, wantCells, cells(t, coo))
			for _, e := range coo.Entries() {
				require.NotZero(t, e.Val, "explicit zeros must be dropped")
			}
		})
	}
}

func TestDense_Guards(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, 3))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	require.Equal(t, "[0, 0]\n[0, 3]\n", m.String())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	inf, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}})
	require.NoError(t, err)
	_, err = inf.ToCOO()
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	coo, err := empty.ToCOO()
	require.NoError(t, err)
	require.Zero(t, coo.Len())
}

func TestCOO_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewCOO(2, 2, []int{0}, []int{0, 1}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewCOO(2, 2, []int{2}, []int{0}, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewCOO(2, 2, []int{0}, []int{0}, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Exported fields edited after construction are re-checked by ToCOO.
	m, err := matrix.NewCOO(2, 2, []int{0}, []int{0}, nil)
	require.NoError(t, err)
	m.Col[0] = 7
	_, err = m.ToCOO()
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilCOO *matrix.COO
	_, err = nilCOO.ToCOO()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCompressed_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"CSR_ShortIndptr", func() error { _, err := matrix.NewCSR(2, 2, []int{0, 1}, []int{0}, nil); return err }, matrix.ErrDimensionMismatch},
		{"CSR_Decreasing", func() error { _, err := matrix.NewCSR(2, 2, []int{0, 2, 1}, []int{0}, nil); return err }, matrix.ErrMalformed},
		{"CSR_BadTail", func() error { _, err := matrix.NewCSR(1, 2, []int{0, 3}, []int{0}, nil); return err }, matrix.ErrMalformed},
		{"CSR_ColOutOfRange", func() error { _, err := matrix.NewCSR(1, 2, []int{0, 1}, []int{5}, nil); return err }, matrix.ErrOutOfRange},
		{"CSC_DataLen", func() error { _, err := matrix.NewCSC(2, 1, []int{0, 1}, []int{0}, []float64{1, 2}); return err }, matrix.ErrDimensionMismatch},
		{"CSC_Inf", func() error { _, err := matrix.NewCSC(2, 1, []int{0, 1}, []int{1}, []float64{math.Inf(-1)}); return err }, matrix.ErrNaNInf},
		{"CSC_NegativeShape", func() error { _, err := matrix.NewCSC(-2, 1, []int{0, 0}, nil, nil); return err }, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.build(), tc.wantErr)
		})
	}
}

func TestLIL_SetMaterializesData(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLILFromRows(3, [][]int{{2}, {}})
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 0)) // explicit zero: stored, then dropped
	require.NoError(t, m.Set(1, 1, 5))
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	coo, err := m.ToCOO()
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 2}, {1, 1}}, cells(t, coo))

	_, err = matrix.NewLILFromRows(1, [][]int{{1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestBitmap_Queries(t *testing.T) {
	t.Parallel()

	b, err := matrix.NewBitmap(4, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(3, 1))
	require.NoError(t, b.Set(3, 1))
	require.ErrorIs(t, b.Set(4, 0), matrix.ErrOutOfRange)

	require.True(t, b.Has(3, 1))
	require.False(t, b.Has(3, 0))
	require.False(t, b.Has(-1, 0))

	n, err := b.ColumnCardinality(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)
	_, err = b.ColumnCardinality(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
