// Package arrayx provides index-of-extremum helpers for Go slices and
// iterators.
//
// The central operation is MinIndex: scan a sequence, optionally mapping each
// element through an accessor, and return the index of the least comparable
// observed value, or -1 when there is none.
//
// # Quick Start
//
//	arrayx.MinIndex([]int{5, 1, 2, 3, 4})          // 1
//	arrayx.MinIndex([]string{"c", "a", "b"})       // 1
//	arrayx.MinIndex([]any{20, "3"})                // 1, mixed kinds compare numerically
//	arrayx.MinIndex([]float64{})                   // -1
//
// With an accessor:
//
//	type point struct{ X, Y float64 }
//	i := arrayx.MinIndexFunc(points, func(p point, _ int, _ []point) any {
//	    return p.Y
//	})
//
// # Ordering
//
// Two strings compare lexicographically. Any other pair is coerced to float64
// and compared numerically, so 3 < "20" but "3" > "20". Values that are nil,
// typed nil, or coerce to NaN are skipped. Types can opt in to numeric
// ordering by implementing Valuer.
//
// Ties resolve to the first occurrence: a later equal value never replaces
// the current best.
//
// # Candidate Sets
//
// MinIndexIn restricts the scan to the indices present in a roaring bitmap:
//
//	candidates, _ := arrayx.CandidatesFromRange(100, 200)
//	i := arrayx.MinIndexIn(values, candidates)
//
// # Parallel Scans
//
// A Finder splits large slices into chunks scanned concurrently:
//
//	f, _ := arrayx.NewFinder(arrayx.WithWorkers(8), arrayx.WithChunkSize(1<<14))
//	i, err := arrayx.MinIndexParallel(ctx, f, values, nil)
//
// Sequential helpers never allocate goroutines, never log and never return
// errors. Panics raised by an accessor propagate to the caller unchanged.
package arrayx
