package common

import "math"

// Random is the set of seeded draws the sketch consumes. Each call advances
// the underlying generator exactly once, so a fixed seed and a fixed call
// order always reproduce the same values.
type Random interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
	// Exponential returns a value in [min, max) skewed towards min.
	Exponential(min, max float64) float64
	// Intn returns an integer in [0, n).
	Intn(n int) int
}

// Choice picks one element of items with a single draw from r.
// items must not be empty.
func Choice[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}

// Source adapts any [0, 1) generator (such as the page's fxrand) to Random.
type Source func() float64

// Uniform returns a value in [min, max).
func (s Source) Uniform(min, max float64) float64 {
	return uniform(s(), min, max)
}

// Exponential returns a value in [min, max) skewed towards min.
func (s Source) Exponential(min, max float64) float64 {
	return exponential(s(), min, max)
}

// Intn returns an integer in [0, n).
func (s Source) Intn(n int) int {
	return intn(s(), n)
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences for reproducible compositions.
type SeededRNG struct {
	state uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed}
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64((t^(t>>14))>>0) / 4294967296.0
}

// Uniform returns a value in [min, max).
func (r *SeededRNG) Uniform(min, max float64) float64 {
	return uniform(r.Random(), min, max)
}

// Exponential returns a value in [min, max) skewed towards min.
func (r *SeededRNG) Exponential(min, max float64) float64 {
	return exponential(r.Random(), min, max)
}

// Intn returns an integer in [0, n).
func (r *SeededRNG) Intn(n int) int {
	return intn(r.Random(), n)
}

func uniform(x, min, max float64) float64 {
	return x*(max-min) + min
}

// exponential squares the draw, so half the mass lands in the lower quarter.
func exponential(x, min, max float64) float64 {
	return math.Pow(x, 2)*(max-min) + min
}

func intn(x float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(x * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// HashSeed folds a token hash (e.g. an fxhash string) into a 32-bit seed.
func HashSeed(hash string) uint32 {
	var seed uint32 = 2166136261
	for i := 0; i < len(hash); i++ {
		seed ^= uint32(hash[i])
		seed *= 16777619
	}
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
