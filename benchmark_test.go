package arrayx

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/arrayx/internal/testutil"
)

func BenchmarkMinIndex(b *testing.B) {
	rng := testutil.NewRNG(1)

	for _, n := range []int{100, 10_000, 1_000_000} {
		values := rng.Float64s(n)

		b.Run(fmt.Sprintf("Sequential/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				MinIndex(values)
			}
		})

		f, err := NewFinder()
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("Parallel/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			for b.Loop() {
				if _, err := MinIndexParallel(ctx, f, values, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
