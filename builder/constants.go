// SPDX-License-Identifier: MIT
// Package builder: method tags used to prefix constructor errors.
package builder

const (
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodCompleteUniform is the canonical name for the CompleteUniform constructor.
	MethodCompleteUniform = "CompleteUniform"
	// MethodRandomUniform is the canonical name for the RandomUniform constructor.
	MethodRandomUniform = "RandomUniform"
)

// Minimum sizes shared by the constructors.
const (
	minStarNodes = 2
	minNodes     = 1
	minEdgeSize  = 1
	edgeIDPrefix = "e"
)
