package rng

import (
	"sync"
	"testing"
)

func TestIntNStaysInBounds(t *testing.T) {
	s := NewSeeded(7, 11)
	for _, n := range []int{1, 2, 3, 10, 1000} {
		for i := 0; i < 200; i++ {
			v := s.IntN(n)
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestIntNIsDeterministicForFixedSeed(t *testing.T) {
	a := NewSeeded(42, 43)
	b := NewSeeded(42, 43)
	for i := 0; i < 100; i++ {
		if va, vb := a.IntN(1000), b.IntN(1000); va != vb {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, va, vb)
		}
	}
}

func TestLazySeedingOnFirstDraw(t *testing.T) {
	s := New()
	v := s.IntN(10)
	if v < 0 || v >= 10 {
		t.Fatalf("IntN(10) = %d, out of range", v)
	}
}

func TestIntNPanicsOnNonPositiveBound(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IntN(%d) must panic", n)
				}
			}()
			New().IntN(n)
		}()
	}
}

// First use from many goroutines must seed exactly once and stay in bounds.
func TestConcurrentFirstUse(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if v := s.IntN(5); v < 0 || v >= 5 {
					t.Errorf("IntN(5) = %d, out of range", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestIntNCoversFullRange(t *testing.T) {
	s := NewSeeded(3, 5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[s.IntN(4)] = true
	}
	for v := 0; v < 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn from IntN(4)", v)
		}
	}
}
