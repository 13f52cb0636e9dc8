// Package fileset holds the set of discovered file paths.
package fileset

import "sort"

// Set is an unordered collection of unique file paths.
type Set map[string]struct{}

// New returns a set holding paths.
func New(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p. It reports whether p was not already present.
func (s Set) Add(p string) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// AddAll inserts every path of other.
func (s Set) AddAll(other Set) {
	for p := range other {
		s[p] = struct{}{}
	}
}

func (s Set) Contains(p string) bool {
	_, ok := s[p]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the paths in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.AddAll(s)
	return out
}

// Difference returns the paths of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for p := range s {
		if !other.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Equal reports whether s and other hold the same paths.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
