// Package search finds the coin system that keeps a cashier's tray smallest.
//
// Overview:
//
//   - A base system is the unit coin 1 plus a list of slots, e.g. the US
//     system is 1 + [5 10 25].
//   - Every candidate replaces exactly one varied slot with one value from
//     an inclusive range [From, To]. With S varied slots and R values there
//     are S·R candidates; duplicates that collapse to the same set (for
//     example replacing 25 with 10) are still evaluated as separate
//     candidates so the count and order stay fixed.
//   - Each candidate gets a fresh till, change maker and simulator and is
//     scored by the average tray size over Length simulated payments.
//   - The winner is the first candidate with the lowest score, in
//     enumeration order: slot index outer, ascending replacement inner.
//
// Reproducibility:
//
//   - Trials never share state. Each one draws bills from its own
//     prices.Source built by a SourceFactory from a seed.
//   - By default every trial receives the same seed, so all candidates are
//     compared against an identical bill stream (common random numbers).
//     WithIndependentStreams derives seed+index instead.
//   - Results, including the trial list, are identical for any number of
//     workers.
//
// Cancellation:
//
//   - Run honours ctx: once it is done no further trials start and Run
//     returns the context error. There is no per-trial timeout.
//
// Observability:
//
//   - slog events search_start, trial_done (debug) and search_done.
//   - Prometheus: cointray_search_trials_total{result},
//     cointray_search_trial_duration_seconds, cointray_search_best_score.
//   - One OpenTelemetry span "search.Run" per call.
//
// Example:
//
//	data, _ := prices.LoadFile("prices.txt")
//	res, err := search.Run(ctx, search.ListFactory(data),
//	    search.WithRange(2, 99),
//	    search.WithLength(1000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("The winner is:", res.Winner.Set)
package search
