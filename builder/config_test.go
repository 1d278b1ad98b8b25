// SPDX-License-Identifier: MIT
// Internal tests for builderConfig: option ordering, RNG wiring and edge
// numbering across constructors.
package builder

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// TestIDSchemeOptions verifies that id scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := cfgDefault.edgeIDFn(7); got != "e7" {
		t.Errorf("default edgeIDFn: expected \"e7\", got %q", got)
	}

	cfgExcel := newBuilderConfig(WithIDScheme(ExcelColumnIDFn))
	if got := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithIDScheme(Excel): expected \"AB\", got %q", got)
	}

	// last option wins
	cfgReset := newBuilderConfig(WithIDScheme(SymbolIDFn), WithIDScheme(DefaultIDFn))
	if got := cfgReset.idFn(3); got != "3" {
		t.Errorf("override: expected \"3\", got %q", got)
	}
}

// TestRNGOptions verifies the rng field under WithRand and WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfg.rng)
	}

	a, b := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	for i := 0; i < 4; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed(42): draw %d differs: %d vs %d", i, x, y)
		}
	}
}

// TestAddEdge checks index mapping, edge numbering and error wrapping.
func TestAddEdge(t *testing.T) {
	t.Parallel()

	h := hypergraph.New[string, string]()
	cfg := newBuilderConfig(WithIDScheme(SymbolIDFn))
	if err := cfg.addEdge(h, MethodChain, []int{0, 2}); err != nil {
		t.Fatalf("addEdge: %v", err)
	}
	if cfg.nextEdge != 1 {
		t.Fatalf("nextEdge = %d, want 1", cfg.nextEdge)
	}
	m, ok := h.Members("e0")
	if !ok || !m.Has("A") || !m.Has("C") || m.Len() != 2 {
		t.Fatalf("e0 members = %v, want {A C}", m)
	}

	// force a collision by rewinding the counter
	cfg.nextEdge = 0
	err := cfg.addEdge(h, MethodChain, []int{1})
	if !errors.Is(err, ErrConstructFailed) || !errors.Is(err, hypergraph.ErrDuplicateEdge) {
		t.Fatalf("collision: got %v, want ErrConstructFailed and ErrDuplicateEdge", err)
	}
}
