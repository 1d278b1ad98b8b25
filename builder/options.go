// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil functions/RNG).
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// WithIDScheme sets the node id generator: idx → id. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithEdgeIDScheme sets the edge id generator. Edge indices run across all
// constructors of one BuildHypergraph call. Panics on nil.
func WithEdgeIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithEdgeIDScheme(nil)")
	}

	return func(c *builderConfig) { c.edgeIDFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
