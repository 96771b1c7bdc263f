package multiset

import "errors"

// ErrOverflow indicates that an aggregation exceeded the range of its element type.
var ErrOverflow = errors.New("multiset: integer overflow")

// Integer is the set of integer element types accepted by the numeric helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
