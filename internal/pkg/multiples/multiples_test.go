package multiples

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		factor   int
		expected int
		ok       bool
	}{
		{name: "multiples of three", values: []int{1, 2, 3, 4, 5, 6}, factor: 3, expected: 9, ok: true},
		{name: "empty input", values: []int{}, factor: 5, expected: 0, ok: true},
		{name: "nil input", values: nil, factor: 5, expected: 0, ok: true},
		{name: "zero factor", values: []int{1, 2, 3}, factor: 0, expected: 0, ok: false},
		{name: "zero factor on empty input", values: nil, factor: 0, expected: 0, ok: false},
		{name: "no multiples", values: []int{1, 2, 4, 5}, factor: 3, expected: 0, ok: true},
		{name: "factor one sums everything", values: []int{1, 2, 3}, factor: 1, expected: 6, ok: true},
		{name: "zero elements are multiples", values: []int{0, 0, 7}, factor: 7, expected: 7, ok: true},
		{name: "negative elements", values: []int{-6, -4, -3, 2}, factor: 3, expected: -9, ok: true},
		{name: "negative factor", values: []int{1, 2, 3, 4, 5, 6}, factor: -3, expected: 9, ok: true},
		{name: "negative factor and elements", values: []int{-6, 6, -5}, factor: -2, expected: 0, ok: true},
		{name: "minus one factor", values: []int{math.MinInt, 1}, factor: -1, expected: math.MinInt + 1, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, ok := Sum(tt.values, tt.factor)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, sum)
		})
	}
}

func TestSum_DoesNotMutateInput(t *testing.T) {
	values := []int{6, 5, 4, 3, 2, 1}

	Sum(values, 2)

	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, values)
}

func TestSum_OtherIntegerTypes(t *testing.T) {
	sum8, ok := Sum([]int8{3, 4, 6}, 3)
	assert.True(t, ok)
	assert.Equal(t, int8(9), sum8)

	sumU, ok := Sum([]uint{10, 15, 20}, 10)
	assert.True(t, ok)
	assert.Equal(t, uint(30), sumU)

	type score int
	sumS, ok := Sum([]score{2, 3, 4}, score(2))
	assert.True(t, ok)
	assert.Equal(t, score(6), sumS)
}

func TestSumFloat(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		factor   float64
		expected float64
		ok       bool
	}{
		{name: "whole numbers", values: []float64{1, 2, 3, 4, 5, 6}, factor: 3, expected: 9, ok: true},
		{name: "fractional factor", values: []float64{0.5, 0.75, 1.5}, factor: 0.5, expected: 2, ok: true},
		{name: "zero factor", values: []float64{1, 2, 3}, factor: 0, expected: 0, ok: false},
		{name: "negative zero factor", values: []float64{1}, factor: math.Copysign(0, -1), expected: 0, ok: false},
		{name: "negative elements", values: []float64{-3, -2, 3}, factor: 3, expected: 0, ok: true},
		{name: "non-finite elements are skipped", values: []float64{math.Inf(1), math.NaN(), 4}, factor: 2, expected: 4, ok: true},
		{name: "empty input", values: nil, factor: 2, expected: 0, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, ok := SumFloat(tt.values, tt.factor)

			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, sum, 1e-9)
		})
	}
}
