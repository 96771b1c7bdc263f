package search

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/till"
)

// Sentinel errors returned by the search package.
var (
	// ErrEmptySlots indicates a base system without slots to vary.
	ErrEmptySlots = errors.New("search: base system needs at least one slot")

	// ErrBadSlot indicates a non-positive slot value or an out-of-range varied index.
	ErrBadSlot = errors.New("search: invalid slot")

	// ErrBadRange indicates From < 1 or To < From.
	ErrBadRange = errors.New("search: replacement range must satisfy 1 <= from <= to")

	// ErrNilFactory indicates Run was called without a SourceFactory.
	ErrNilFactory = errors.New("search: source factory is nil")
)

// SourceFactory builds the bill source for one trial from its seed.
type SourceFactory func(seed int64) (prices.Source, error)

// ListFactory returns a SourceFactory drawing uniformly from data.
func ListFactory(data []int) SourceFactory {
	data = slices.Clone(data)
	return func(seed int64) (prices.Source, error) {
		return prices.NewList(data, seed)
	}
}

// Options configures a search.
//
// Slots              – non-unit denominations of the base system (default 5, 10, 25).
// Varied             – slot indices that may be replaced (default: all).
// From, To           – inclusive replacement range (default 2..99).
// Length             – payments simulated per trial (default 1000).
// Seed               – seed handed to the SourceFactory (default 1).
// IndependentStreams – seed each trial with Seed+index instead of Seed.
// Workers            – concurrent trials (default GOMAXPROCS).
// Strategy, Modulus  – forwarded to every till.
// Logger             – structured logger (default discards).
type Options struct {
	Slots              []int
	Varied             []int
	From               int
	To                 int
	Length             int
	Seed               int64
	IndependentStreams bool
	Workers            int
	Strategy           till.Strategy
	Modulus            int
	Logger             *slog.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions reproduces the classic experiment: vary each US slot over 2..99.
func DefaultOptions() Options {
	return Options{
		Slots:    []int{5, 10, 25},
		From:     2,
		To:       99,
		Length:   1000,
		Seed:     1,
		Workers:  runtime.GOMAXPROCS(0),
		Strategy: till.WholeTray,
		Modulus:  till.DefaultModulus,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSlots sets the non-unit base denominations. Panics when empty or non-positive.
func WithSlots(slots ...int) Option {
	if len(slots) == 0 {
		panic(ErrEmptySlots.Error())
	}
	for _, s := range slots {
		if s <= 0 {
			panic(ErrBadSlot.Error())
		}
	}
	slots = slices.Clone(slots)
	return func(o *Options) {
		o.Slots = slots
	}
}

// WithVaried restricts replacement to the given slot indices. Panics on negatives.
func WithVaried(indices ...int) Option {
	for _, i := range indices {
		if i < 0 {
			panic(ErrBadSlot.Error())
		}
	}
	indices = slices.Clone(indices)
	return func(o *Options) {
		o.Varied = indices
	}
}

// WithRange sets the inclusive replacement range. Panics unless 1 <= from <= to.
func WithRange(from, to int) Option {
	if from < 1 || to < from {
		panic(ErrBadRange.Error())
	}
	return func(o *Options) {
		o.From, o.To = from, to
	}
}

// WithLength sets payments per trial. Panics if n <= 0.
func WithLength(n int) Option {
	if n <= 0 {
		panic("search: WithLength must be positive")
	}
	return func(o *Options) {
		o.Length = n
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithIndependentStreams gives every trial its own seed (Seed + index).
func WithIndependentStreams() Option {
	return func(o *Options) {
		o.IndependentStreams = true
	}
}

// WithWorkers bounds concurrent trials. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("search: WithWorkers must be at least 1")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithStrategy sets the till payment strategy for every trial.
func WithStrategy(s till.Strategy) Option {
	// Validates s.
	_ = till.WithStrategy(s)
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithModulus sets the till change modulus for every trial. Panics if m <= 0.
func WithModulus(m int) Option {
	_ = till.WithModulus(m)
	return func(o *Options) {
		o.Modulus = m
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// Candidate is one proposed coin system.
type Candidate struct {
	Index         int        // position in enumeration order
	Slot          int        // replaced slot index
	Replacement   int        // value placed in the slot
	Denominations []int      // 1 followed by the slots after replacement, unsorted
	Set           change.Set // validated, sorted, deduplicated form
}

// Trial is the outcome of simulating one candidate.
type Trial struct {
	Candidate Candidate
	Score     float64       // mean tray size
	Seed      int64         // seed given to the SourceFactory
	Elapsed   time.Duration // wall time of the trial
}

// Result is the outcome of a search.
type Result struct {
	RunID   string  // unique per Run call
	Winner  Trial   // first trial with the lowest score
	Trials  []Trial // every trial in enumeration order
	Elapsed time.Duration
}

// Ranked returns the trials ordered by score; equal scores keep enumeration order.
func (r Result) Ranked() []Trial {
	out := slices.Clone(r.Trials)
	slices.SortStableFunc(out, func(a, b Trial) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	})

	return out
}
