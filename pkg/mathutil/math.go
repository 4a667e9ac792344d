// Package mathutil provides small numeric helpers shared by the calculators.
package mathutil

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when an integer sum does not fit in int.
var ErrOverflow = errors.New("integer overflow")

// Clamp restricts val to the range [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}

// ClampProbability restricts p to [0, 1]. Used to absorb rounding drift
// from log-space arithmetic.
func ClampProbability(p float64) float64 {
	return Clamp(p, 0, 1)
}

// AddInts returns the sum of values, or ErrOverflow if any partial sum
// leaves the int range.
func AddInts(values ...int) (int, error) {
	var sum int

	for _, v := range values {
		if (v > 0 && sum > math.MaxInt-v) || (v < 0 && sum < math.MinInt-v) {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, sum, v)
		}

		sum += v
	}

	return sum, nil
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
