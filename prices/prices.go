// Package prices supplies bill amounts to the tray simulator.
//
// The simulator only needs a Source: something that yields the next
// non-negative bill. List draws uniformly, with replacement, from a list of
// observed prices using an explicitly seeded *rand.Rand so runs are
// reproducible. Sequence replays a fixed slice, which is convenient in tests.
package prices

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for price lists.
var (
	// ErrEmptyList indicates a price list with no entries.
	ErrEmptyList = errors.New("prices: price list is empty")

	// ErrMalformedPrice indicates a line that is not an integer.
	ErrMalformedPrice = errors.New("prices: malformed price")

	// ErrNegativePrice indicates a negative price.
	ErrNegativePrice = errors.New("prices: price must be non-negative")
)

// Source yields bill amounts in cents.
type Source interface {
	Next() int
}

// List draws uniformly with replacement from a fixed set of prices.
type List struct {
	data []int
	rng  *rand.Rand
}

// NewList returns a List over data seeded with seed.
// data is copied; it must be non-empty and non-negative.
func NewList(data []int, seed int64) (*List, error) {
	if err := check(data); err != nil {
		return nil, err
	}

	return &List{
		data: slices.Clone(data),
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Next returns a uniformly chosen price.
func (l *List) Next() int {
	return l.data[l.rng.Intn(len(l.data))]
}

// Len returns the number of prices in the list.
func (l *List) Len() int { return len(l.data) }

// Each calls fn with count successive draws.
func (l *List) Each(count int, fn func(bill int)) {
	for i := 0; i < count; i++ {
		fn(l.Next())
	}
}

// Sequence replays a fixed list of bills, cycling when exhausted.
type Sequence struct {
	data []int
	pos  int
}

// NewSequence returns a Sequence over bills.
func NewSequence(bills ...int) (*Sequence, error) {
	if err := check(bills); err != nil {
		return nil, err
	}

	return &Sequence{data: slices.Clone(bills)}, nil
}

// Next returns the next bill in order.
func (s *Sequence) Next() int {
	v := s.data[s.pos]
	s.pos = (s.pos + 1) % len(s.data)
	return v
}

// Parse reads one integer price per line. Blank lines are skipped.
// Errors name the 1-based line number.
func Parse(r io.Reader) ([]int, error) {
	var (
		out  []int
		line int
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedPrice, line, text)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: line %d: %d", ErrNegativePrice, line, v)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("prices: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}

	return out, nil
}

// LoadFile parses the price list stored at path.
func LoadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prices: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

func check(data []int) error {
	if len(data) == 0 {
		return ErrEmptyList
	}
	for i, v := range data {
		if v < 0 {
			return fmt.Errorf("%w: index %d: %d", ErrNegativePrice, i, v)
		}
	}

	return nil
}
