// Package util holds small generic container helpers shared across the mso
// packages: map-backed sets of states/symbols for automaton algebra (their
// Elements come back in no particular order), a sorted canonical rendering
// of a set, and ordered-key iteration for deterministic output.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// ISet is the common interface implemented by the set types in this package.
// Automaton state sets, input-symbol sets, and track-index sets are all
// represented this way so that product construction, subset construction,
// and projection can be written once against the interface rather than once
// per concrete representation.
type ISet[E comparable] interface {
	// Add adds the given element to the set. No effect if already present.
	Add(element E)

	// AddAll adds every element of s2 to the set.
	AddAll(s2 ISet[E])

	// Remove removes the given element. No effect if not present.
	Remove(element E)

	// Has returns whether element is in the set.
	Has(element E) bool

	// Len returns the number of elements.
	Len() int

	// Copy returns an independent copy of the set.
	Copy() ISet[E]

	// Elements returns the set's members in unspecified order.
	Elements() []E

	// Union returns a new set containing every element of s or s2.
	Union(s2 ISet[E]) ISet[E]

	// Intersection returns a new set containing every element in both s and
	// s2.
	Intersection(s2 ISet[E]) ISet[E]

	// Difference returns a new set containing the elements of s not in s2.
	Difference(s2 ISet[E]) ISet[E]

	// Empty returns whether the set has no elements.
	Empty() bool

	// Any returns whether any element satisfies predicate.
	Any(predicate func(v E) bool) bool
}

// KeySet is a set of comparable values backed by a map.
type KeySet[E comparable] map[E]bool

// NewKeySet creates a KeySet pre-populated with the keys of every map given.
func NewKeySet[E comparable](of ...map[E]bool) KeySet[E] {
	s := KeySet[E]{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// KeySetOf creates a KeySet containing every element of sl.
func KeySetOf[E comparable](sl []E) KeySet[E] {
	s := NewKeySet[E]()
	for _, e := range sl {
		s.Add(e)
	}
	return s
}

func (s KeySet[E]) Add(v E)      { s[v] = true }
func (s KeySet[E]) Remove(v E)   { delete(s, v) }
func (s KeySet[E]) Has(v E) bool { _, ok := s[v]; return ok }
func (s KeySet[E]) Len() int     { return len(s) }
func (s KeySet[E]) Empty() bool  { return len(s) == 0 }

func (s KeySet[E]) Copy() ISet[E] {
	newS := NewKeySet[E]()
	for k := range s {
		newS[k] = true
	}
	return newS
}

func (s KeySet[E]) Elements() []E {
	sl := make([]E, 0, len(s))
	for k := range s {
		sl = append(sl, k)
	}
	return sl
}

func (s KeySet[E]) AddAll(s2 ISet[E]) {
	for _, e := range s2.Elements() {
		s.Add(e)
	}
}

func (s KeySet[E]) Union(o ISet[E]) ISet[E] {
	newSet := s.Copy()
	newSet.AddAll(o)
	return newSet
}

func (s KeySet[E]) Intersection(o ISet[E]) ISet[E] {
	newSet := NewKeySet[E]()
	for k := range s {
		if o.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

func (s KeySet[E]) Difference(o ISet[E]) ISet[E] {
	newSet := s.Copy()
	for _, k := range o.Elements() {
		newSet.Remove(k)
	}
	return newSet
}

func (s KeySet[E]) Any(predicate func(v E) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// StringSet is a KeySet specialized for strings, used throughout the mso
// packages for input-symbol sets and state-name sets.
type StringSet = KeySet[string]

// NewStringSet creates a StringSet pre-populated with the keys of every map
// given.
func NewStringSet(of ...map[string]bool) StringSet {
	return NewKeySet(of...)
}

// StringSetOf creates a StringSet containing every element of sl.
func StringSetOf(sl []string) StringSet {
	return KeySetOf(sl)
}

// StringOrdered renders the set's elements sorted alphabetically, e.g.
// "{q0, q1, q2}". Used to build canonical, hashable names for subset-
// construction states so that equal subsets collapse to the same DFA state
// regardless of discovery order.
func StringOrdered[E comparable](s ISet[E]) string {
	elems := s.Elements()
	strs := make([]string, len(elems))
	for i := range elems {
		strs[i] = fmt.Sprintf("%v", elems[i])
	}
	sort.Strings(strs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(strs, ", "))
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted by their string representation,
// for deterministic iteration over maps keyed by state or symbol names.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
