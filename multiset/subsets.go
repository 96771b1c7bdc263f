package multiset

import "strconv"

// DistinctSubsets enumerates every distinct sub-multiset of sorted.
//
// Order contract (reproducible, relied upon for tie-breaking):
//
//	subsets([])       = [[]]
//	subsets([x, xs…]) = dedup( [x]+s for s in subsets(xs) ++ subsets(xs) )
//
// where dedup keeps the first occurrence. The full input therefore comes
// first and the empty sub-multiset last. Each returned slice is ascending
// when sorted is ascending, and is freshly allocated.
//
// Complexity: O(2^n · n) time and space in the worst case (all distinct);
// runs of equal values collapse to O(∏(kᵢ+1)) distinct results.
func DistinctSubsets[T Integer](sorted []T) [][]T {
	if len(sorted) == 0 {
		return [][]T{{}}
	}

	var (
		first  = sorted[0]
		others = DistinctSubsets(sorted[1:])
		out    = make([][]T, 0, 2*len(others))
		seen   = make(map[string]struct{}, 2*len(others))
		s      []T
	)
	add := func(candidate []T) {
		k := subsetKey(candidate)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, candidate)
	}

	for _, s = range others {
		withFirst := make([]T, 0, len(s)+1)
		withFirst = append(withFirst, first)
		withFirst = append(withFirst, s...)
		add(withFirst)
	}
	for _, s = range others {
		add(s)
	}

	return out
}

// subsetKey encodes a slice as a map key; the int64 conversion is injective per width.
func subsetKey[T Integer](s []T) string {
	buf := make([]byte, 0, 4*len(s))
	for _, v := range s {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ',')
	}

	return string(buf)
}
