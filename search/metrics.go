package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// trialsTotal counts finished trials by result.
	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cointray_search_trials_total",
		Help: "Search trials by result",
	}, []string{"result"})

	// trialDuration tracks wall time per trial.
	trialDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cointray_search_trial_duration_seconds",
		Help:    "Wall time of one search trial",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})

	// bestScore holds the winning score of the most recent search.
	bestScore = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cointray_search_best_score",
		Help: "Mean tray size of the most recent search winner",
	})
)
