// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// dual.go — dual derivation: invert a membership mapping.

package convert

import "github.com/katalvlaran/hyperlath/hypergraph"

// Dual inverts m: for every k and every v in m[k], k is added to out[v].
// Keys of m with an empty set do not appear in the result. Single pass,
// explicit insert-if-absent.
// Complexity: O(total incidences).
func Dual[K, V comparable](m map[K]hypergraph.Set[V]) map[V]hypergraph.Set[K] {
	out := make(map[V]hypergraph.Set[K])
	var (
		s  hypergraph.Set[K]
		ok bool
	)
	for k, vs := range m {
		for v := range vs {
			if s, ok = out[v]; !ok {
				s = make(hypergraph.Set[K])
				out[v] = s
			}
			s.Add(k)
		}
	}

	return out
}
