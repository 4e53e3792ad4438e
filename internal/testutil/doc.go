// Package testutil provides helpers for arrayx tests and benchmarks.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Float64s(1000)        // uniform [0, 1)
//	ints := rng.Ints(1000, 50)          // uniform [0, 50)
//	rng.Sprinkle(anyValues, 0.1, nil)   // replace ~10% with nil
//
// # Reference Results
//
//	want := testutil.ArgMin(values)     // brute-force, first occurrence
package testutil
