package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64s returns n values in range [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}
	return out
}

// Ints returns n values in range [0, maxVal). Small ranges produce ties.
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Sprinkle replaces roughly ratio of the entries in values with v.
func (r *RNG) Sprinkle(values []any, ratio float64, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range values {
		if r.rand.Float64() < ratio {
			values[i] = v
		}
	}
}

// ArgMin returns the first index of the least value, or -1 for an empty slice.
// NaN entries are skipped.
func ArgMin(values []float64) int {
	best := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v < values[best] {
			best = i
		}
	}
	return best
}

// ArgMax returns the first index of the greatest value, or -1.
// NaN entries are skipped.
func ArgMax(values []float64) int {
	best := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}

// Boxed wraps a value the way callers often do before handing a slice of
// records to an accessor-based helper.
type Boxed struct {
	Value any
}

// Box wraps every element of values.
func Box(values ...any) []Boxed {
	out := make([]Boxed, len(values))
	for i, v := range values {
		out[i] = Boxed{Value: v}
	}
	return out
}

// Unbox is an accessor returning the wrapped value.
func Unbox(b Boxed, _ int, _ []Boxed) any {
	return b.Value
}
