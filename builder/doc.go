// Package builder generates deterministic (or seeded) hypergraph fixtures.
//
//	h, err := builder.BuildHypergraph(
//		[]builder.Option{builder.WithSeed(7), builder.WithIDScheme(builder.SymbolIDFn)},
//		builder.Chain(5, 3),
//		builder.RandomUniform(10, 4, 3),
//	)
//
// Constructors:
//
//	Star(n)                 n-1 edges {hub, leaf}
//	Chain(n, k)             sliding windows of k consecutive nodes
//	CompleteUniform(n, k)   all k-subsets of n nodes
//	RandomUniform(n, m, k)  m random k-subsets (needs WithSeed/WithRand)
//
// Edge ids run across constructors ("e0", "e1", ... by default), so several
// constructors compose into one hypergraph without collisions. Node ids come
// from WithIDScheme; constructors index their nodes from 0, so two
// constructors in one build share node ids by index.
package builder
