package change

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Unit is the coin value every denomination set must contain.
const Unit = 1

// Sentinel errors returned by the change package.
var (
	// ErrMissingUnit indicates a denomination set without the unit coin.
	ErrMissingUnit = errors.New("change: denomination set must contain the unit coin 1")

	// ErrNonPositiveDenomination indicates a coin value of zero or less.
	ErrNonPositiveDenomination = errors.New("change: denominations must be positive")

	// ErrNegativeAmount indicates a request for change of a negative amount.
	ErrNegativeAmount = errors.New("change: amount must be non-negative")
)

var (
	// cacheLookups counts Change/Count calls by whether the amount was already solved.
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cointray_change_cache_lookups_total",
		Help: "Change lookups by cache result",
	}, []string{"result"})

	// amountsSolved counts amounts solved by the dynamic program across all makers.
	amountsSolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cointray_change_amounts_solved_total",
		Help: "Amounts solved by the change dynamic program",
	})
)
