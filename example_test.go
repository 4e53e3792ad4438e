package arrayx_test

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/arrayx"
)

func ExampleMinIndex() {
	fmt.Println(arrayx.MinIndex([]int{5, 1, 2, 3, 4}))
	fmt.Println(arrayx.MinIndex([]string{"20", "3"}))
	fmt.Println(arrayx.MinIndex([]any{20, "3"}))
	fmt.Println(arrayx.MinIndex([]any{10, nil, 3, nil, 5, math.NaN()}))
	fmt.Println(arrayx.MinIndex([]float64{}))
	// Output:
	// 1
	// 0
	// 1
	// 2
	// -1
}

func ExampleMinIndexFunc() {
	type city struct {
		Name string
		Temp float64
	}
	cities := []city{{"Oslo", -3}, {"Cairo", 24}, {"Yakutsk", -38}}

	i := arrayx.MinIndexFunc(cities, func(c city, _ int, _ []city) any {
		return c.Temp
	})
	fmt.Println(cities[i].Name)
	// Output: Yakutsk
}

func ExampleMinIndexIn() {
	values := []int{0, 9, 8, 7, 6, -1}

	candidates, err := arrayx.CandidatesFromRange(1, 5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(arrayx.MinIndexIn(values, candidates))
	// Output: 4
}

func ExampleMinIndexParallel() {
	f, err := arrayx.NewFinder(arrayx.WithWorkers(4), arrayx.WithChunkSize(1000))
	if err != nil {
		log.Fatal(err)
	}

	values := make([]float64, 10000)
	for i := range values {
		values[i] = math.Abs(float64(i - 6543))
	}

	i, err := arrayx.MinIndexParallel(context.Background(), f, values, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(i)
	// Output: 6543
}
