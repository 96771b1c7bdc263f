package till

import (
	"fmt"

	"github.com/katalvlaran/cointray/multiset"
)

// Pay settles bill: the till surrenders coins and takes back the fewest
// coins worth (surrendered − bill) mod Modulus.
//
// With WholeTray the resulting holding is exactly
// change((Amount() − bill) mod Modulus). With SubsetSearch see package docs.
//
// On any error the till is left exactly as it was before the call.
func (t *Till) Pay(bill int) (Receipt, error) {
	if bill < 0 {
		return Receipt{}, fmt.Errorf("%w: got %d", ErrNegativeBill, bill)
	}

	give, err := t.plan(bill)
	if err != nil {
		return Receipt{}, err
	}
	given, err := multiset.Sum(give)
	if err != nil {
		return Receipt{}, err
	}
	get, err := t.maker.Change(t.wrap(given - bill))
	if err != nil {
		return Receipt{}, err
	}

	// Apply on scratch, then commit.
	scratch := t.Clone()
	for _, c := range give {
		if _, err = scratch.Give(c); err != nil {
			return Receipt{}, fmt.Errorf("till: pay %d aborted: %w", bill, err)
		}
	}
	for _, c := range get {
		if _, err = scratch.Take(c); err != nil {
			return Receipt{}, fmt.Errorf("till: pay %d aborted: %w", bill, err)
		}
	}
	t.coins, t.total = scratch.coins, scratch.total

	return Receipt{Bill: bill, Surrendered: give, Received: get}, nil
}

// plan returns the coins to surrender for bill under the configured strategy.
func (t *Till) plan(bill int) ([]int, error) {
	if t.opts.Strategy == WholeTray {
		return t.Coins(), nil
	}

	var (
		candidates = multiset.DistinctSubsets(t.coins)
		scoreErr   error
	)
	best, _, ok := multiset.MinBy(candidates, func(g []int) int {
		if scoreErr != nil {
			return 0
		}
		s, err := multiset.Sum(g)
		if err != nil {
			scoreErr = err
			return 0
		}
		n, err := t.maker.Count(t.wrap(s - bill))
		if err != nil {
			scoreErr = err
			return 0
		}
		return len(t.coins) - len(g) + n
	})
	if scoreErr != nil {
		return nil, scoreErr
	}
	if !ok {
		// DistinctSubsets always yields at least the empty sub-multiset.
		return nil, nil
	}

	return best, nil
}

// wrap reduces x into [0, Modulus).
func (t *Till) wrap(x int) int {
	m := t.opts.Modulus
	return ((x % m) + m) % m
}
