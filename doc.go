// Package cointray searches for the coin system that keeps a cashier's tray
// smallest.
//
// A cashier pays for purchases out of a tray of coins and takes back the
// fewest coins of change, with amounts reasoned about modulo one dollar.
// Over many purchases the tray settles around some average size; cointray
// simulates that process and compares coin systems by it.
//
// Everything is organized under small packages, leaf-first:
//
//	multiset/ — generic helpers over sorted coin slices (sum, min-by, sub-multisets)
//	change/   — denomination sets and the memoised minimum-coin change maker
//	till/     — the tray itself: give, take and pay with atomic commit
//	prices/   — bill sources: seeded draws from a price list, fixed sequences
//	simulate/ — one till driven through a stream of bills
//	search/   — exhaustive one-slot-replacement search over coin systems
//	config/   — YAML search parameters
//	cmd/cointray — command-line front end
//
// Quick example:
//
//	res, err := search.Run(ctx, search.ListFactory(shelfPrices))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("The winner is:", res.Winner.Candidate.Set)
//
//	go install github.com/katalvlaran/cointray/cmd/cointray@latest
package cointray
