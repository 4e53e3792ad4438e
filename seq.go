package arrayx

import "iter"

// MinIndexSeq returns the position of the least comparable value yielded by
// seq, or -1. The sequence is consumed once.
func MinIndexSeq[T any](seq iter.Seq[T]) int {
	return MinIndexSeqFunc(seq, nil)
}

// MinIndexSeqFunc is MinIndexFunc for iterators. f receives each element and
// its position; a nil f observes the elements themselves.
func MinIndexSeqFunc[T any](seq iter.Seq[T], f func(d T, i int) any) int {
	return scanSeq(seq, f, Less).index
}

// MaxIndexSeq returns the position of the greatest comparable value yielded
// by seq, or -1.
func MaxIndexSeq[T any](seq iter.Seq[T]) int {
	return MaxIndexSeqFunc(seq, nil)
}

// MaxIndexSeqFunc is MaxIndexFunc for iterators.
func MaxIndexSeqFunc[T any](seq iter.Seq[T], f func(d T, i int) any) int {
	return scanSeq(seq, f, greater).index
}

func scanSeq[T any](seq iter.Seq[T], f func(d T, i int) any, better func(a, b any) bool) tracker {
	t := newTracker(better)
	if seq == nil {
		return t
	}
	i := 0
	for d := range seq {
		if f != nil {
			t.observe(i, f(d, i))
		} else {
			t.observe(i, d)
		}
		i++
	}
	return t
}
