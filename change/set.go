package change

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Set is an ascending collection of distinct positive coin values containing 1.
// The zero value is empty and is rejected by NewMaker.
type Set struct {
	values []int
}

// NewSet validates values and returns them as a Set.
// Input order is irrelevant and duplicates collapse to a single coin.
//
// Errors:
//   - ErrNonPositiveDenomination if any value is ≤ 0.
//   - ErrMissingUnit if 1 is not among the values.
//
// Complexity: O(n log n).
func NewSet(values ...int) (Set, error) {
	var v int
	for _, v = range values {
		if v <= 0 {
			return Set{}, fmt.Errorf("%w: got %d", ErrNonPositiveDenomination, v)
		}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	if len(sorted) == 0 || sorted[0] != Unit {
		return Set{}, fmt.Errorf("%w: got %v", ErrMissingUnit, sorted)
	}

	return Set{values: sorted}, nil
}

// MustSet is NewSet that panics on invalid input. Intended for literals and tests.
func MustSet(values ...int) Set {
	s, err := NewSet(values...)
	if err != nil {
		panic(err.Error())
	}

	return s
}

// US returns the United States coin system {1, 5, 10, 25}.
func US() Set {
	return Set{values: []int{1, 5, 10, 25}}
}

// Values returns a copy of the denominations in ascending order.
func (s Set) Values() []int {
	return slices.Clone(s.values)
}

// Len returns the number of distinct denominations.
func (s Set) Len() int {
	return len(s.values)
}

// Contains reports whether coin is a legal denomination of s.
func (s Set) Contains(coin int) bool {
	_, found := slices.BinarySearch(s.values, coin)
	return found
}

// Largest returns the highest denomination, or 0 for the zero Set.
func (s Set) Largest() int {
	if len(s.values) == 0 {
		return 0
	}

	return s.values[len(s.values)-1]
}

// Equal reports whether both sets hold the same denominations.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.values, other.values)
}

// String renders the set as "[1 5 10 25]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

func (s Set) valid() bool {
	return len(s.values) > 0 && s.values[0] == Unit
}
