// Package change computes minimum-cardinality coin change over a fixed
// denomination set.
//
// Overview:
//
//   - A Set is an immutable, ascending collection of distinct positive coin
//     values that always contains the unit coin 1. Because 1 is present,
//     every non-negative amount is representable and Maker never fails on a
//     valid amount.
//   - A Maker owns one Set and an append-only cache keyed by amount. Each
//     amount is solved exactly once per Maker; later calls are lookups.
//   - Change returns a fresh ascending slice. Callers may mutate it freely;
//     the cache is never exposed.
//
// Algorithm (optimal substructure):
//
//	change(0) = {}
//	change(a) = {c} ∪ change(a − c)   for the first c (ascending) with c ≤ a
//	                                   minimising 1 + |change(a − c)|
//
// The recursion is evaluated bottom-up from the largest solved amount to
// the requested one, which gives exactly the same tie-breaking as the
// top-down form without recursion depth proportional to the amount.
//
// Complexity:
//
//   - Time:  O(A · D) amortised over all calls on one Maker, where A is the
//     largest amount requested and D = |Set|.
//   - Space: O(A) — one coin pick and one count per amount.
//   - Reading a cached amount costs O(k log k) for a k-coin result
//     (reconstruction plus sort).
//
// Error handling (sentinel errors):
//
//   - ErrMissingUnit: the Set lacks the value 1.
//   - ErrNonPositiveDenomination: a value ≤ 0 was supplied.
//   - ErrNegativeAmount: Change/Count was called with amount < 0.
//
// Thread safety:
//
//   - Set is immutable and safe to share.
//   - Maker guards its cache with a RWMutex: cached amounts are read
//     concurrently and extension of the cache is single-writer. Sharing a
//     Maker between goroutines is therefore safe, although the search
//     driver gives every trial its own Maker.
//
// Example:
//
//	m, err := change.New(1, 5, 10, 25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coins, _ := m.Change(11) // [1 10]
package change
