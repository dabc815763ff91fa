package common

import (
	"math"
	"testing"
)

func TestSeededRNG_SameSeedSameSequence(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Random(), b.Random(); x != y {
			t.Fatalf("draw %d: expected identical values, got %f and %f", i, x, y)
		}
	}
}

func TestSeededRNG_UniformRange(t *testing.T) {
	r := NewSeededRNG(1234)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(400, 1700)
		if v < 400 || v >= 1700 {
			t.Fatalf("Uniform(400, 1700) out of range: %f", v)
		}
	}
}

func TestSeededRNG_ExponentialRangeAndSkew(t *testing.T) {
	r := NewSeededRNG(99)
	below := 0
	n := 2000
	for i := 0; i < n; i++ {
		v := r.Exponential(0.1, 0.3)
		if v < 0.1 || v >= 0.3 {
			t.Fatalf("Exponential(0.1, 0.3) out of range: %f", v)
		}
		if v < 0.2 {
			below++
		}
	}
	// Squared draws put ~70% of the mass in the lower half.
	if float64(below)/float64(n) < 0.6 {
		t.Errorf("Expected skew towards min, only %d/%d below midpoint", below, n)
	}
}

func TestSeededRNG_IntnRange(t *testing.T) {
	r := NewSeededRNG(5)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := r.Intn(3)
		if v < 0 || v >= 3 {
			t.Fatalf("Intn(3) out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all of 0..2 to be drawn, got %v", seen)
	}
}

func TestSeededRNG_IntnZero(t *testing.T) {
	r := NewSeededRNG(5)
	if v := r.Intn(0); v != 0 {
		t.Errorf("Expected Intn(0) to return 0, got %d", v)
	}
}

func TestChoice_AdvancesOnce(t *testing.T) {
	a := NewSeededRNG(11)
	b := NewSeededRNG(11)

	Choice(a, []string{"sea", "stone", "cells"})
	b.Random()

	if x, y := a.Random(), b.Random(); x != y {
		t.Errorf("Expected Choice to consume exactly one draw, next values %f and %f", x, y)
	}
}

func TestSource_MatchesSeededRNG(t *testing.T) {
	r := NewSeededRNG(2024)
	src := Source(NewSeededRNG(2024).Random)

	if x, y := r.Uniform(0, 1000), src.Uniform(0, 1000); x != y {
		t.Errorf("Uniform: expected %f, got %f", x, y)
	}
	if x, y := r.Exponential(0.9, 1.4), src.Exponential(0.9, 1.4); math.Abs(x-y) > 1e-12 {
		t.Errorf("Exponential: expected %f, got %f", x, y)
	}
	if x, y := r.Intn(5), src.Intn(5); x != y {
		t.Errorf("Intn: expected %d, got %d", x, y)
	}
}

func TestHashSeed_Deterministic(t *testing.T) {
	if HashSeed("ooABCDEF") != HashSeed("ooABCDEF") {
		t.Error("Expected HashSeed to be deterministic")
	}
	if HashSeed("ooABCDEF") == HashSeed("ooABCDEG") {
		t.Error("Expected different hashes to give different seeds")
	}
}
