// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn      ("0","1","2",...)
//   • edgeIDFn = DefaultEdgeIDFn  ("e0","e1",...)
//   • rng      = nil              (stochastic constructors refuse to run)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// builderConfig aggregates the knobs used by constructors. nextEdge is the
// only mutable field: it numbers edges across every constructor of one build.
type builderConfig struct {
	idFn     IDFn
	edgeIDFn IDFn
	rng      *rand.Rand
	nextEdge int
}

func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		idFn:     DefaultIDFn,
		edgeIDFn: DefaultEdgeIDFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// addEdge inserts members (node indices) as the next edge.
func (c *builderConfig) addEdge(h *hypergraph.Hypergraph[string, string], method string, members []int) error {
	id := c.edgeIDFn(c.nextEdge)
	c.nextEdge++
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = c.idFn(m)
	}
	if err := h.AddEdge(id, ids); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
