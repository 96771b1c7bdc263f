package multiset

import (
	"cmp"
	"fmt"
)

// Sum returns the total of xs.
// An empty (or nil) slice sums to zero. Overflow is reported as ErrOverflow
// together with the index of the element that caused it; no partial total
// is returned in that case.
// Complexity: O(len(xs)) time, O(1) space.
func Sum[T Integer](xs []T) (T, error) {
	var (
		total T
		next  T
		i     int
		x     T
	)
	for i, x = range xs {
		next = total + x
		// Signed wrap-around flips the direction of the change.
		if (x > 0 && next < total) || (x < 0 && next > total) {
			return 0, fmt.Errorf("%w: at index %d", ErrOverflow, i)
		}
		total = next
	}

	return total, nil
}

// MinBy returns the element of xs with the smallest key, along with its index.
// Ties are resolved in favour of the earliest element. ok is false iff xs is empty.
// Complexity: O(len(xs)) calls to key.
func MinBy[T any, K cmp.Ordered](xs []T, key func(T) K) (best T, idx int, ok bool) {
	if len(xs) == 0 {
		return best, -1, false
	}

	var (
		bestKey = key(xs[0])
		k       K
		i       int
	)
	best, idx = xs[0], 0
	for i = 1; i < len(xs); i++ {
		k = key(xs[i])
		if k < bestKey { // strict: first minimum wins
			best, bestKey, idx = xs[i], k, i
		}
	}

	return best, idx, true
}

// Count reports how many elements of xs equal v.
func Count[T comparable](xs []T, v T) int {
	var n int
	for _, x := range xs {
		if x == v {
			n++
		}
	}

	return n
}
