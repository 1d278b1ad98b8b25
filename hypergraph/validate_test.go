// SPDX-License-Identifier: MIT

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Validate is only reachable with broken state from inside the package.
func TestValidate_DetectsViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		corrupt func(h *Hypergraph[int, string])
		want    error
	}{
		{
			name:    "NodeSideOnly",
			corrupt: func(h *Hypergraph[int, string]) { h.nodes[1].Add("ghost") },
			want:    ErrDualityViolation,
		},
		{
			name:    "EdgeSideOnly",
			corrupt: func(h *Hypergraph[int, string]) { h.edges["e1"].Add(5) },
			want:    ErrDualityViolation,
		},
		{
			name:    "IsolatedNode",
			corrupt: func(h *Hypergraph[int, string]) { h.nodes[8] = make(Set[string]); h.nodeAttrs[8] = Attrs{} },
			want:    ErrDualityViolation,
		},
		{
			name:    "MissingNodeAttrs",
			corrupt: func(h *Hypergraph[int, string]) { delete(h.nodeAttrs, 1) },
			want:    ErrMissingAttrs,
		},
		{
			name:    "MissingEdgeAttrs",
			corrupt: func(h *Hypergraph[int, string]) { delete(h.edgeAttrs, "e1") },
			want:    ErrMissingAttrs,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := New[int, string]()
			require.NoError(t, h.AddEdge("e1", []int{1, 2}))
			require.NoError(t, h.Validate())
			tc.corrupt(h)
			require.ErrorIs(t, h.Validate(), tc.want)
		})
	}
}
