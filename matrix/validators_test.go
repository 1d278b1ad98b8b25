// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"math"
	"testing"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"shape ok", validateShape(0, 0), nil},
		{"shape negative rows", validateShape(-1, 2), ErrBadShape},
		{"shape negative cols", validateShape(2, -1), ErrBadShape},
		{"index ok", validateIndex(2, 3), nil},
		{"index high", validateIndex(3, 3), ErrOutOfRange},
		{"index negative", validateIndex(-1, 3), ErrOutOfRange},
		{"value ok", validateValue(-2.5), nil},
		{"value NaN", validateValue(math.NaN()), ErrNaNInf},
		{"value +Inf", validateValue(math.Inf(1)), ErrNaNInf},
		{"offsets ok", validateOffsets([]int{0, 2, 2, 3}, 3, 3), nil},
		{"offsets short", validateOffsets([]int{0, 3}, 3, 3), ErrDimensionMismatch},
		{"offsets bad start", validateOffsets([]int{1, 2, 3}, 2, 3), ErrMalformed},
		{"offsets bad end", validateOffsets([]int{0, 1, 2}, 2, 3), ErrMalformed},
		{"offsets decreasing", validateOffsets([]int{0, 2, 1, 3}, 3, 3), ErrMalformed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, tc.err, tc.want)
		}
	}
}
