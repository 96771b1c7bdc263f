// Package simulate drives a stream of bills through a single till and
// measures how many coins the tray holds on average.
//
// The till is shared across the whole run: each Pay starts from the tray
// the previous one left behind, modelling one cashier over many sales.
// A failed transaction ends the run with an error; it is never skipped.
package simulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/till"
)

// Sentinel errors returned by the simulator.
var (
	// ErrNonPositiveLength indicates a run of zero or negative transactions.
	ErrNonPositiveLength = errors.New("simulate: length must be positive")

	// ErrNilSource indicates a missing bill source.
	ErrNilSource = errors.New("simulate: bill source is nil")

	// ErrNilTill indicates a missing till.
	ErrNilTill = errors.New("simulate: till is nil")
)

// Hook observes every committed transaction: its 1-based step, the receipt,
// and the tray size afterwards.
type Hook func(step int, receipt till.Receipt, count int)

// Stats summarises one run.
type Stats struct {
	Transactions int     // number of bills paid
	Mean         float64 // average tray size after each payment
	Min          int     // smallest tray seen after a payment
	Max          int     // largest tray seen after a payment
	Final        int     // tray size at the end of the run
}

// Simulator binds a till to a bill source.
type Simulator struct {
	till *till.Till
	src  prices.Source
	hook Hook
}

// New returns a Simulator over t and src.
func New(t *till.Till, src prices.Source) (*Simulator, error) {
	if t == nil {
		return nil, ErrNilTill
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &Simulator{till: t, src: src}, nil
}

// NewForSet starts from an empty till over set.
func NewForSet(set change.Set, src prices.Source, opts ...till.Option) (*Simulator, error) {
	t, err := till.New(set, nil, opts...)
	if err != nil {
		return nil, err
	}

	return New(t, src)
}

// OnTransaction installs h, replacing any previous hook. nil removes it.
func (s *Simulator) OnTransaction(h Hook) {
	s.hook = h
}

// Till returns the simulated till.
func (s *Simulator) Till() *till.Till {
	return s.till
}

// Run pays length bills and returns the mean tray size.
func (s *Simulator) Run(length int) (float64, error) {
	st, err := s.RunStats(length)
	if err != nil {
		return 0, err
	}

	return st.Mean, nil
}

// RunStats pays length bills and returns the full summary.
func (s *Simulator) RunStats(length int) (Stats, error) {
	if length <= 0 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrNonPositiveLength, length)
	}

	var (
		sum   int
		st    = Stats{Min: -1}
		step  int
		bill  int
		count int
	)
	for step = 1; step <= length; step++ {
		bill = s.src.Next()
		r, err := s.till.Pay(bill)
		if err != nil {
			return Stats{}, fmt.Errorf("simulate: transaction %d (bill %d): %w", step, bill, err)
		}

		count = s.till.Count()
		sum += count
		if st.Min < 0 || count < st.Min {
			st.Min = count
		}
		if count > st.Max {
			st.Max = count
		}
		if s.hook != nil {
			s.hook(step, r, count)
		}
	}

	st.Transactions = length
	st.Mean = float64(sum) / float64(length)
	st.Final = count

	return st, nil
}
