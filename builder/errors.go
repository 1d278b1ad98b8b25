// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach their method tag with %w ("Chain: k=0 ...: %w").
//   • Constructors never panic; option constructors panic on nil arguments.

package builder

import "errors"

// ErrTooFewNodes indicates a node count below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadEdgeSize indicates a hyperedge size k outside [1, n], or a negative
// edge count.
var ErrBadEdgeSize = errors.New("builder: invalid hyperedge size")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a container rejection.
var ErrConstructFailed = errors.New("builder: construction failed")
