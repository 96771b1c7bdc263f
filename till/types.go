package till

import (
	"errors"
	"fmt"
)

// DefaultModulus wraps every transaction to change within one dollar (in cents).
const DefaultModulus = 100

// Sentinel errors returned by Till operations.
var (
	// ErrNonOptimalStart indicates an initial holding that is not the fewest coins for its total.
	ErrNonOptimalStart = errors.New("till: initial coins are not a minimal representation of their total")

	// ErrInsufficientCoin indicates Give for a denomination that is not currently held.
	ErrInsufficientCoin = errors.New("till: coin not held")

	// ErrInvalidDenomination indicates a coin outside the till's denomination set.
	ErrInvalidDenomination = errors.New("till: coin is not a legal denomination")

	// ErrNegativeBill indicates Pay was called with a negative bill.
	ErrNegativeBill = errors.New("till: bill must be non-negative")
)

// Strategy selects how Pay chooses the coins to surrender.
type Strategy int

const (
	// WholeTray surrenders every held coin and refills with optimal change.
	WholeTray Strategy = iota

	// SubsetSearch surrenders the sub-multiset that minimises the resulting tray size.
	SubsetSearch
)

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	switch s {
	case WholeTray:
		return "whole"
	case SubsetSearch:
		return "subset"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a configuration name back into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "whole":
		return WholeTray, nil
	case "subset":
		return SubsetSearch, nil
	default:
		return WholeTray, fmt.Errorf("till: unknown strategy %q", name)
	}
}

// Options configures a Till.
//
// Strategy – how Pay chooses what to surrender (default WholeTray).
// Modulus  – change is computed modulo this value (default 100). Must be > 0.
type Options struct {
	Strategy Strategy
	Modulus  int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns WholeTray payments with a modulus of 100.
func DefaultOptions() Options {
	return Options{
		Strategy: WholeTray,
		Modulus:  DefaultModulus,
	}
}

// WithStrategy selects the payment strategy. Panics on unknown values.
func WithStrategy(s Strategy) Option {
	if s != WholeTray && s != SubsetSearch {
		panic("till: WithStrategy(" + s.String() + ")")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithModulus sets the change modulus. Panics if m ≤ 0.
func WithModulus(m int) Option {
	if m <= 0 {
		panic("till: WithModulus must be positive")
	}
	return func(o *Options) {
		o.Modulus = m
	}
}

// Receipt records one committed payment.
type Receipt struct {
	Bill        int   // bill that was paid
	Surrendered []int // coins handed over, ascending
	Received    []int // change taken back, ascending
}
