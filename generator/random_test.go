package generator

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt(t *testing.T) {
	r := NewRandom(7)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Int(3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, 5, r.Int(5, 5))
	v := r.Int(9, 1)
	assert.True(t, v >= 1 && v <= 9)
}

func TestRandomFloat(t *testing.T) {
	tests := []struct {
		min, max, precision int
	}{
		{0, 10000, 2},
		{1, 2, 3},
		{5, 5, 2},
		{-3, 3, 1},
		{0, 10, 0},
	}

	r := NewRandom(11)
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.min)+"_"+strconv.Itoa(tt.max)+"_"+strconv.Itoa(tt.precision), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				v := r.Float(tt.min, tt.max, tt.precision)
				assert.GreaterOrEqual(t, v, float64(tt.min))
				assert.LessOrEqual(t, v, float64(tt.max))

				s := strconv.FormatFloat(v, 'f', -1, 64)
				decimals := 0
				if dot := strings.IndexByte(s, '.'); dot >= 0 {
					decimals = len(s) - dot - 1
				}
				assert.LessOrEqual(t, decimals, tt.precision, s)
			}
		})
	}
}

func TestChooseUniformEmpty(t *testing.T) {
	r := NewRandom(1)

	v, ok := ChooseUniform[string](r, nil)
	assert.False(t, ok)
	assert.Empty(t, v)

	w, ok := ChooseWeighted(r, []Weighted[int]{{Item: 1, Weight: 0}})
	assert.False(t, ok)
	assert.Zero(t, w)
}

func TestChooseWeightedExpansion(t *testing.T) {
	r := NewRandom(3)
	items := []Weighted[string]{{Item: "a", Weight: 1}, {Item: "b", Weight: 3}}

	const draws = 20000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		v, ok := ChooseWeighted(r, items)
		assert.True(t, ok)
		counts[v]++
	}
	assert.InDelta(t, 0.25, float64(counts["a"])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(counts["b"])/draws, 0.02)
}

func TestBoolLikely(t *testing.T) {
	tests := []struct {
		likely int
		want   float64
	}{
		{likely: 2, want: 0.50},
		{likely: 3, want: 0.33},
		{likely: 5, want: 0.20},
		{likely: 1, want: 1.00},
		{likely: 0, want: 0.50},
		{likely: 101, want: 0.00},
	}

	r := NewRandom(5)
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.likely), func(t *testing.T) {
			const draws = 10000
			hits := 0
			for i := 0; i < draws; i++ {
				if BoolLikely(r, true, false, tt.likely) {
					hits++
				}
			}
			assert.InDelta(t, tt.want, float64(hits)/draws, 0.02)
		})
	}
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int(0, 1000000), b.Int(0, 1000000))
	}
}
