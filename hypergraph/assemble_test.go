// SPDX-License-Identifier: MIT

package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("Consistent", func(t *testing.T) {
		t.Parallel()
		edges := map[string]hypergraph.Set[int]{
			"e1": hypergraph.NewSet(1, 2),
			"e2": nil,
		}
		nodes := map[int]hypergraph.Set[string]{
			1: hypergraph.NewSet("e1"),
			2: hypergraph.NewSet("e1"),
		}
		h, err := hypergraph.Assemble(nodes, edges)
		require.NoError(t, err)
		require.True(t, h.HasEdge("e2"))
		_, ok := h.EdgeAttrs("e2")
		require.True(t, ok)
		_, ok = h.NodeAttrs(2)
		require.True(t, ok)
	})

	t.Run("Inconsistent", func(t *testing.T) {
		t.Parallel()
		edges := map[string]hypergraph.Set[int]{"e1": hypergraph.NewSet(1)}
		nodes := map[int]hypergraph.Set[string]{1: hypergraph.NewSet("e1", "e9")}
		h, err := hypergraph.Assemble(nodes, edges)
		require.ErrorIs(t, err, hypergraph.ErrDualityViolation)
		require.Nil(t, h)
	})

	t.Run("NilMaps", func(t *testing.T) {
		t.Parallel()
		h, err := hypergraph.Assemble[int, string](nil, nil)
		require.NoError(t, err)
		require.Zero(t, h.NumNodes())
		require.Zero(t, h.NumEdges())
	})
}
