// Package rng provides the random source for shuffle mode: one explicit
// value, lazily seeded from the OS entropy pool on first use, safe against
// a concurrent first draw.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"fortio.org/safecast"
)

// Source is a bounded-draw random source. The zero constructor defers
// seeding until the first draw; the generator is never reseeded afterwards.
type Source struct {
	mu  sync.Mutex
	gen *rand.Rand
}

// New returns an unseeded source. Seeding happens under the mutex on the
// first call to IntN.
func New() *Source {
	return &Source{}
}

// NewSeeded returns a source with a fixed seed. Test hook: it makes the
// permutation deterministic without touching the entropy pool.
func NewSeeded(s1, s2 uint64) *Source {
	return &Source{gen: rand.New(rand.NewPCG(s1, s2))}
}

// IntN draws a value uniformly distributed over [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN bound must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == nil {
		s.gen = rand.New(rand.NewPCG(entropy(), entropy()))
	}
	bound, err := safecast.Conv[uint64](n)
	if err != nil {
		panic(err)
	}
	v, err := safecast.Conv[int](s.gen.Uint64N(bound))
	if err != nil {
		panic(err)
	}
	return v
}

func entropy() uint64 {
	var b [8]byte
	// crypto/rand.Read is documented to never fail.
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}
