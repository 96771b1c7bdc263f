// Package multiset provides small generic helpers over ordered multisets
// represented as ascending slices.
//
// Overview:
//
//   - Sum folds a numeric slice, returning the additive identity for an
//     empty slice and ErrOverflow when the running total leaves the range
//     of the element type.
//   - MinBy selects the first element with the smallest key.
//   - DistinctSubsets enumerates every distinct sub-multiset of a sorted
//     slice in a fixed, reproducible order.
//   - Insert, Remove and Equal operate on sorted slices without mutating
//     their inputs.
//
// All helpers are pure: they never retain or modify caller slices.
package multiset
