package arrayx

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/arrayx/internal/conv"
)

// MinIndexIn returns the index of the least comparable value among the
// indices in candidates, or -1. A nil bitmap selects every index.
func MinIndexIn[T any](values []T, candidates *roaring.Bitmap) int {
	return MinIndexInFunc(values, candidates, nil)
}

// MinIndexInFunc is MinIndexFunc restricted to candidates. Indices are visited
// in ascending order; those at or past len(values) are ignored. The accessor
// receives the original index and the full slice.
func MinIndexInFunc[T any](values []T, candidates *roaring.Bitmap, f Accessor[T]) int {
	return scanIn(values, candidates, f, Less).index
}

// MaxIndexIn returns the index of the greatest comparable value among the
// indices in candidates, or -1.
func MaxIndexIn[T any](values []T, candidates *roaring.Bitmap) int {
	return MaxIndexInFunc(values, candidates, nil)
}

// MaxIndexInFunc is MaxIndexFunc restricted to candidates.
func MaxIndexInFunc[T any](values []T, candidates *roaring.Bitmap, f Accessor[T]) int {
	return scanIn(values, candidates, f, greater).index
}

// CandidatesFromRange returns a bitmap holding the indices in [start, end).
func CandidatesFromRange(start, end int) (*roaring.Bitmap, error) {
	lo, hi, err := conv.RangeToUint64(start, end)
	if err != nil {
		return nil, err
	}
	rb := roaring.New()
	rb.AddRange(lo, hi)
	return rb, nil
}

// CandidatesOf returns a bitmap holding the given indices.
func CandidatesOf(indices ...int) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for _, i := range indices {
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		rb.Add(id)
	}
	return rb, nil
}

func scanIn[T any](values []T, candidates *roaring.Bitmap, f Accessor[T], better func(a, b any) bool) tracker {
	if candidates == nil {
		return scan(values, f, better)
	}
	if f == nil {
		f = identity[T]
	}
	t := newTracker(better)
	n := uint64(len(values))
	candidates.Iterate(func(x uint32) bool {
		if uint64(x) >= n {
			return false
		}
		i := int(x)
		t.observe(i, f(values[i], i, values))
		return true
	})
	return t
}
