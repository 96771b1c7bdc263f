package multiset

import (
	"cmp"
	"slices"
)

// Insert returns a new ascending slice holding the elements of sorted plus v.
// Equal elements keep their relative order; v is placed after existing equals.
// Complexity: O(n) time and space.
func Insert[T cmp.Ordered](sorted []T, v T) []T {
	// Upper bound: first position whose element is strictly greater than v.
	pos, _ := slices.BinarySearch(sorted, v)
	for pos < len(sorted) && sorted[pos] == v {
		pos++
	}

	out := make([]T, 0, len(sorted)+1)
	out = append(out, sorted[:pos]...)
	out = append(out, v)
	out = append(out, sorted[pos:]...)

	return out
}

// Remove returns a new slice equal to sorted with exactly one instance of v
// taken out. ok is false, and the result is nil, when v is absent.
// Complexity: O(n) time and space.
func Remove[T cmp.Ordered](sorted []T, v T) (out []T, ok bool) {
	pos, found := slices.BinarySearch(sorted, v)
	if !found {
		return nil, false
	}

	out = make([]T, 0, len(sorted)-1)
	out = append(out, sorted[:pos]...)
	out = append(out, sorted[pos+1:]...)

	return out, true
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// Sorted returns an ascending copy of xs.
func Sorted[T cmp.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)

	return out
}
