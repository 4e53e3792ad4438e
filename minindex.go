package arrayx

import "github.com/hupe1980/arrayx/internal/order"

// Accessor maps an element to the value that takes part in ordering.
// It receives the element, its index and the slice being scanned.
type Accessor[T any] func(d T, i int, values []T) any

// Valuer is implemented by types that carry their own numeric conversion.
// A Valuer returning NaN is skipped like any other NaN.
type Valuer = order.Valuer

// MinIndex returns the index of the least comparable value in values, or -1.
func MinIndex[T any](values []T) int {
	return MinIndexFunc(values, nil)
}

// MinIndexFunc returns the index of the element whose observed value is the
// least, or -1 if no observed value is comparable. A nil accessor observes
// the elements themselves.
//
// f is invoked exactly once per element, in index order.
func MinIndexFunc[T any](values []T, f Accessor[T]) int {
	t := scan(values, f, order.Less)
	return t.index
}

// MaxIndex returns the index of the greatest comparable value in values, or -1.
func MaxIndex[T any](values []T) int {
	return MaxIndexFunc(values, nil)
}

// MaxIndexFunc is the counterpart of MinIndexFunc for the greatest value.
func MaxIndexFunc[T any](values []T, f Accessor[T]) int {
	t := scan(values, f, greater)
	return t.index
}

// Min returns the least comparable element of values.
// ok is false when there is none.
func Min[T any](values []T) (v T, ok bool) {
	return elementAt(values, MinIndex(values))
}

// MinFunc returns the least comparable observed value.
func MinFunc[T any](values []T, f Accessor[T]) (v any, ok bool) {
	t := scan(values, f, order.Less)
	return t.value, t.index >= 0
}

// Max returns the greatest comparable element of values.
// ok is false when there is none.
func Max[T any](values []T) (v T, ok bool) {
	return elementAt(values, MaxIndex(values))
}

// MaxFunc returns the greatest comparable observed value.
func MaxFunc[T any](values []T, f Accessor[T]) (v any, ok bool) {
	t := scan(values, f, greater)
	return t.value, t.index >= 0
}

// Less reports whether a orders strictly before b.
func Less(a, b any) bool {
	return order.Less(a, b)
}

// Comparable reports whether v takes part in ordering at all.
func Comparable(v any) bool {
	return order.Comparable(v)
}

func scan[T any](values []T, f Accessor[T], better func(a, b any) bool) tracker {
	if f == nil {
		f = identity[T]
	}
	t := newTracker(better)
	for i, d := range values {
		t.observe(i, f(d, i, values))
	}
	return t
}

func elementAt[T any](values []T, i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	return values[i], true
}

func identity[T any](d T, _ int, _ []T) any {
	return d
}

func greater(a, b any) bool {
	return order.Less(b, a)
}

// tracker holds the running best of a scan.
type tracker struct {
	better func(a, b any) bool
	index  int
	value  any
}

func newTracker(better func(a, b any) bool) tracker {
	return tracker{better: better, index: -1}
}

// observe records v at index i if it is comparable and strictly better than
// the current best. Equal values keep the earlier index.
func (t *tracker) observe(i int, v any) {
	if !order.Comparable(v) {
		return
	}
	if t.index < 0 || t.better(v, t.value) {
		t.index, t.value = i, v
	}
}
