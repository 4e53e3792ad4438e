package arrayx

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinIndexSeq(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		expected int
	}{
		{"Numbers", []any{5, 1, 2, 3, 4}, 1},
		{"Strings", []any{"c", "a", "b"}, 1},
		{"Mixed", []any{"20", 3}, 1},
		{"MixedMissing", []any{10, nil, 3, nil, 5, nan}, 2},
		{"Empty", []any{}, -1},
		{"NaNs", []any{nan, nan}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinIndexSeq(slices.Values(tt.values)))
			assert.Equal(t, MinIndex(tt.values), MinIndexSeq(slices.Values(tt.values)))
		})
	}

	t.Run("NilSeq", func(t *testing.T) {
		assert.Equal(t, -1, MinIndexSeq[int](nil))
	})
}

func TestMinIndexSeqFunc(t *testing.T) {
	var positions []int
	got := MinIndexSeqFunc(slices.Values([]string{"bb", "a", "ccc"}), func(d string, i int) any {
		positions = append(positions, i)
		return len(d)
	})

	assert.Equal(t, 1, got)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestMinIndexSeqConsumesOnce(t *testing.T) {
	pulls := 0
	seq := func(yield func(int) bool) {
		for _, v := range []int{3, 1, 2} {
			pulls++
			if !yield(v) {
				return
			}
		}
	}

	assert.Equal(t, 1, MinIndexSeq(seq))
	assert.Equal(t, 3, pulls)
}

func TestMaxIndexSeq(t *testing.T) {
	assert.Equal(t, 2, MaxIndexSeq(slices.Values([]int{1, 2, 3, 3})))
	assert.Equal(t, -1, MaxIndexSeq(slices.Values([]any{nil})))

	m := map[string]int{"only": 4}
	assert.Equal(t, 0, MaxIndexSeqFunc(maps.Values(m), func(d int, _ int) any {
		return -d
	}))
}
