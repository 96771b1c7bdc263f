package change

import (
	"fmt"
	"slices"
	"sync"
)

// Maker computes minimum-cardinality change for one Set and memoises every
// amount it solves. Construct with NewMaker or New.
type Maker struct {
	set Set

	mu    sync.RWMutex
	count []int // count[a] = |change(a)|; len(count)-1 is the largest solved amount
	pick  []int // pick[a]  = coin chosen for a (0 for a == 0)
}

// NewMaker returns a Maker bound to set.
// Returns ErrMissingUnit for the zero Set.
func NewMaker(set Set) (*Maker, error) {
	if !set.valid() {
		return nil, ErrMissingUnit
	}

	return &Maker{
		set:   set,
		count: []int{0},
		pick:  []int{0},
	}, nil
}

// New validates values with NewSet and returns a Maker over them.
func New(values ...int) (*Maker, error) {
	set, err := NewSet(values...)
	if err != nil {
		return nil, err
	}

	return NewMaker(set)
}

// Set returns the denominations this Maker was built with.
func (m *Maker) Set() Set {
	return m.set
}

// Change returns the fewest coins of m.Set() summing to amount, ascending.
// change(0) is an empty, non-nil slice. The returned slice is owned by the
// caller.
//
// Ties between equally short results are resolved towards the smallest
// first coin, so repeated calls return identical slices.
func (m *Maker) Change(amount int) ([]int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	m.ensure(amount)

	m.mu.RLock()
	defer m.mu.RUnlock()

	coins := make([]int, 0, m.count[amount])
	for a := amount; a > 0; a -= m.pick[a] {
		coins = append(coins, m.pick[a])
	}
	slices.Sort(coins)

	return coins, nil
}

// Count returns len(Change(amount)) without materialising the coins.
func (m *Maker) Count(amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	m.ensure(amount)

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.count[amount], nil
}

// Solved returns the largest amount currently held in the cache.
func (m *Maker) Solved() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.count) - 1
}

// ensure extends the cache so that every amount up to target is solved.
// Existing entries are never rewritten.
func (m *Maker) ensure(target int) {
	m.mu.RLock()
	solved := len(m.count) - 1
	m.mu.RUnlock()
	if target <= solved {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another writer may have extended the cache meanwhile; keep its entries.
	solved = len(m.count) - 1
	if target <= solved {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()

	var (
		a, c, best, bestCoin, cand int
	)
	for a = solved + 1; a <= target; a++ {
		best, bestCoin = -1, 0
		for _, c = range m.set.values {
			if c > a {
				break // values are ascending
			}
			cand = 1 + m.count[a-c]
			if best < 0 || cand < best {
				best, bestCoin = cand, c
			}
		}
		// Unit coin guarantees bestCoin > 0 here.
		m.count = append(m.count, best)
		m.pick = append(m.pick, bestCoin)
	}
	amountsSolved.Add(float64(target - solved))
}
