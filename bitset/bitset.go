// SPDX-License-Identifier: MIT

package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxBits is the number of sources a Set can hold.
const MaxBits = 64

// Set is a bitmask; bit i set ⇔ source i is a member.
type Set uint64

// Empty is the set with no members.
const Empty Set = 0

// Full returns the set {0, 1, …, n-1}. n is clamped to [0, MaxBits].
func Full(n int) Set {
	if n <= 0 {
		return Empty
	}
	if n >= MaxBits {
		return ^Empty
	}

	return Set(1)<<uint(n) - 1
}

// Of returns the set containing the given indices. Indices outside
// [0, MaxBits) are ignored.
func Of(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s = s.With(i)
	}

	return s
}

// Has reports whether i is a member.
func (s Set) Has(i int) bool {
	if i < 0 || i >= MaxBits {
		return false
	}

	return s&(1<<uint(i)) != 0
}

// With returns s ∪ {i}.
func (s Set) With(i int) Set {
	if i < 0 || i >= MaxBits {
		return s
	}

	return s | 1<<uint(i)
}

// Without returns s \ {i}.
func (s Set) Without(i int) Set {
	if i < 0 || i >= MaxBits {
		return s
	}

	return s &^ (1 << uint(i))
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Difference returns s \ o.
func (s Set) Difference(o Set) Set { return s &^ o }

// Complement returns universe \ s.
func (s Set) Complement(universe Set) Set { return universe &^ s }

// SubsetOf reports whether every member of s is in o.
func (s Set) SubsetOf(o Set) bool { return s&^o == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s == 0 }

// Lowest returns the smallest member, or -1 for the empty set.
func (s Set) Lowest() int {
	if s == 0 {
		return -1
	}

	return bits.TrailingZeros64(uint64(s))
}

// Highest returns the largest member, or -1 for the empty set.
func (s Set) Highest() int {
	if s == 0 {
		return -1
	}

	return MaxBits - 1 - bits.LeadingZeros64(uint64(s))
}

// ForEach calls fn for each member in ascending order.
func (s Set) ForEach(fn func(i int)) {
	for rest := s; rest != 0; rest &= rest - 1 {
		fn(bits.TrailingZeros64(uint64(rest)))
	}
}

// Indices returns the members in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Len())
	s.ForEach(func(i int) { out = append(out, i) })

	return out
}

// String renders the set as "{0,3,5}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.ForEach(func(i int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	})
	b.WriteByte('}')

	return b.String()
}

// SubsetsOf calls fn for every submask of universe, from universe itself
// down to the empty set. Iteration stops early when fn returns false.
//
// Complexity: O(2^|universe|) calls.
func SubsetsOf(universe Set, fn func(s Set) bool) {
	for s := universe; ; s = (s - 1) & universe {
		if !fn(s) {
			return
		}
		if s == 0 {
			return
		}
	}
}
