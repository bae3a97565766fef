// Package store implements the aggregate line store. One Store is built per
// run as exactly one of three disciplines: ordered-unique (equivalents are
// dropped), ordered-multi (equivalents are kept), or sequence (insertion
// order, for shuffle mode). The discipline never changes after construction.
package store

import (
	"slices"
	"sort"

	"lsort/internal/order"
	"lsort/internal/rng"
)

type discipline int

const (
	ordered discipline = iota
	sequence
)

// Store accumulates accepted lines and yields them once, in final order.
type Store struct {
	kind     discipline
	unique   bool
	precedes order.Policy
	lines    []string
	drained  bool
}

// NewOrdered builds an ordering store keyed by p. With unique set, a line
// equivalent to one already present is silently dropped.
func NewOrdered(p order.Policy, unique bool) *Store {
	return &Store{kind: ordered, unique: unique, precedes: p}
}

// NewSequence builds the shuffle-mode store: lines keep arrival order until
// Permute runs.
func NewSequence() *Store {
	return &Store{kind: sequence}
}

// Accept takes ownership of line. Ordering stores place it at its policy
// position immediately (insertion discipline, no bulk sort at the end).
func (s *Store) Accept(line string) {
	if s.drained {
		panic("store: Accept after Drain")
	}
	if s.kind == sequence {
		s.lines = append(s.lines, line)
		return
	}
	i := sort.Search(len(s.lines), func(i int) bool {
		return s.precedes(line, s.lines[i])
	})
	// Everything before i does not follow line; an equivalent, if any,
	// sits immediately to the left.
	if s.unique && i > 0 && !s.precedes(s.lines[i-1], line) {
		return
	}
	s.lines = slices.Insert(s.lines, i, line)
}

// Permute applies one unbiased Fisher–Yates shuffle. Calling it on an
// ordering store is a programming error.
func (s *Store) Permute(random *rng.Source) {
	if s.kind != sequence {
		panic("store: Permute on an ordering store")
	}
	if s.drained {
		panic("store: Permute after Drain")
	}
	for i := len(s.lines) - 1; i > 0; i-- {
		j := random.IntN(i + 1)
		s.lines[i], s.lines[j] = s.lines[j], s.lines[i]
	}
}

// Drain consumes the store and returns the lines in final order. It can be
// called exactly once.
func (s *Store) Drain() []string {
	if s.drained {
		panic("store: Drain called twice")
	}
	s.drained = true
	out := s.lines
	s.lines = nil
	return out
}

// Len reports the number of lines currently held.
func (s *Store) Len() int {
	return len(s.lines)
}
