// Package multiples sums the elements of a slice that divide evenly by a
// factor.
//
// Remainders follow Go's truncated division: the sign of v % factor matches
// v, so -6 is a multiple of 3 and 6 is a multiple of -3. A zero factor has no
// multiples and is reported through the ok result rather than a panic.
package multiples

import "math"

// Integer is any built-in integer type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sum returns the sum of every v in values with v % factor == 0. ok is false
// only when factor is zero. An empty slice sums to 0.
func Sum[T Integer](values []T, factor T) (sum T, ok bool) {
	if factor == 0 {
		return 0, false
	}

	return fold(values, func(acc, v T) T {
		if v%factor == 0 {
			return acc + v
		}
		return acc
	}), true
}

// SumFloat is Sum for float64 using math.Mod. Non-finite elements never count
// as multiples.
func SumFloat(values []float64, factor float64) (sum float64, ok bool) {
	if factor == 0 {
		return 0, false
	}

	return fold(values, func(acc, v float64) float64 {
		if math.Mod(v, factor) == 0 {
			return acc + v
		}
		return acc
	}), true
}

func fold[T any](values []T, step func(acc, v T) T) T {
	var acc T
	for _, v := range values {
		acc = step(acc, v)
	}
	return acc
}
