// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// set.go — generic membership set.
//
// Set is the same map[K]struct{} shape the adjacency catalogs use, lifted to
// any comparable id. Iteration order is unspecified; use SortedItems when a
// stable order is needed (goldens, CLI output).

package hypergraph

import (
	"cmp"
	"reflect"
	"slices"
)

// Set is an unordered collection of unique ids.
type Set[T comparable] map[T]struct{}

// Hashable reports whether v can be used as a map key. It is false when an
// interface-typed id (or a struct/array field of one) holds a slice, map or
// func at run time; inserting such a value into a Set panics.
// Complexity: O(1) for ids without interface parts.
func Hashable[T comparable](v T) bool {
	return reflect.ValueOf(&v).Elem().Comparable()
}

// NewSet returns a Set holding items (duplicates collapse).
// Complexity: O(len(items)).
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts v. Adding an existing member is a no-op.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Remove deletes v if present.
func (s Set[T]) Remove(v T) {
	delete(s, v)
}

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy. A nil set clones to an empty one.
// Complexity: O(|s|).
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// Equal reports whether s and o hold exactly the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if _, ok := o[v]; !ok {
			return false
		}
	}

	return true
}

// Items returns the members in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}

	return out
}

// SortedItems returns the members of s in ascending order.
// Complexity: O(k log k).
func SortedItems[T cmp.Ordered](s Set[T]) []T {
	out := s.Items()
	slices.Sort(out)

	return out
}
