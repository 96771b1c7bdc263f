package till

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/multiset"
)

// Till is an ordered multiset of coins drawn from one denomination set.
type Till struct {
	maker *change.Maker
	coins []int // ascending
	total int
	opts  Options
}

// New builds a Till over set holding coins (any order).
//
// Errors:
//   - change.ErrMissingUnit for an invalid set.
//   - ErrInvalidDenomination if a coin is not in set.
//   - multiset.ErrOverflow if the coins cannot be summed.
//   - ErrNonOptimalStart if coins is not a fewest-coin representation of its total.
func New(set change.Set, coins []int, opts ...Option) (*Till, error) {
	maker, err := change.NewMaker(set)
	if err != nil {
		return nil, err
	}

	return NewWithMaker(maker, coins, opts...)
}

// NewWithMaker is New with an existing Maker, whose set becomes the till's set.
// The Maker may be shared with other tills; its cache is concurrency-safe.
func NewWithMaker(maker *change.Maker, coins []int, opts ...Option) (*Till, error) {
	if maker == nil {
		return nil, change.ErrMissingUnit
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	set := maker.Set()
	for _, c := range coins {
		if !set.Contains(c) {
			return nil, fmt.Errorf("%w: %d not in %s", ErrInvalidDenomination, c, set)
		}
	}

	total, err := multiset.Sum(coins)
	if err != nil {
		return nil, err
	}

	optimal, err := maker.Count(total)
	if err != nil {
		return nil, err
	}
	if optimal != len(coins) {
		best, _ := maker.Change(total)
		return nil, fmt.Errorf("%w: %v should be %v", ErrNonOptimalStart, multiset.Sorted(coins), best)
	}

	return &Till{
		maker: maker,
		coins: multiset.Sorted(coins),
		total: total,
		opts:  cfg,
	}, nil
}

// US returns a Till over the US coin set.
func US(coins ...int) (*Till, error) {
	return New(change.US(), coins)
}

// Amount returns the sum of held coins.
func (t *Till) Amount() int { return t.total }

// Count returns the number of held coins.
func (t *Till) Count() int { return len(t.coins) }

// Coins returns the held coins in ascending order. The slice is a copy.
func (t *Till) Coins() []int {
	out := make([]int, len(t.coins))
	copy(out, t.coins)
	return out
}

// Set returns the till's denomination set.
func (t *Till) Set() change.Set { return t.maker.Set() }

// Strategy returns the configured payment strategy.
func (t *Till) Strategy() Strategy { return t.opts.Strategy }

// Optimal reports whether the holding is a fewest-coin representation of Amount.
func (t *Till) Optimal() bool {
	n, err := t.maker.Count(t.total)
	return err == nil && n == len(t.coins)
}

// Give removes exactly one coin of value coin.
// On error the till is unchanged.
func (t *Till) Give(coin int) (*Till, error) {
	if !t.maker.Set().Contains(coin) {
		return t, fmt.Errorf("%w: %d", ErrInvalidDenomination, coin)
	}
	rest, ok := multiset.Remove(t.coins, coin)
	if !ok {
		return t, fmt.Errorf("%w: %d", ErrInsufficientCoin, coin)
	}
	t.coins = rest
	t.total -= coin

	return t, nil
}

// Take adds one coin of value coin, keeping the holding ascending.
// On error the till is unchanged.
func (t *Till) Take(coin int) (*Till, error) {
	if !t.maker.Set().Contains(coin) {
		return t, fmt.Errorf("%w: %d", ErrInvalidDenomination, coin)
	}
	t.coins = multiset.Insert(t.coins, coin)
	t.total += coin

	return t, nil
}

// Clone returns an independent copy sharing the same Maker.
func (t *Till) Clone() *Till {
	return &Till{
		maker: t.maker,
		coins: t.Coins(),
		total: t.total,
		opts:  t.opts,
	}
}

// Equal reports whether both tills hold the same coins over the same set.
func (t *Till) Equal(other *Till) bool {
	if other == nil {
		return false
	}

	return multiset.Equal(t.coins, other.coins) && t.Set().Equal(other.Set())
}

// String renders the till as "$0.25 (25)".
func (t *Till) String() string {
	parts := make([]string, len(t.coins))
	for i, c := range t.coins {
		parts[i] = strconv.Itoa(c)
	}

	return fmt.Sprintf("$%.2f (%s)", float64(t.total)/100, strings.Join(parts, ", "))
}
