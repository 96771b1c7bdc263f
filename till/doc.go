// Package till models a cashier's coin tray: the multiset of coins one party
// holds, restricted to a fixed denomination set.
//
// A Till is created holding a coin-optimal starting multiset and then
// evolves through Pay, which surrenders coins for a bill and receives change
// computed modulo Modulus (100 cents by default).
//
// Payment strategies:
//
//   - WholeTray (default): the whole holding is surrendered and the tray is
//     refilled with change((amount − bill) mod Modulus). Scoring every
//     ordering of the full holding always yields the same count, so the
//     search collapses to this direct form.
//   - SubsetSearch: every distinct sub-multiset g of the holding is scored by
//     count − |g| + |change((sum(g) − bill) mod Modulus)| and the first
//     minimum in DistinctSubsets order is committed.
//
// Pay is atomic: the new holding is built on a scratch copy with Give and
// Take and only swapped in when every step succeeded.
//
// A Till is not safe for concurrent mutation.
package till
