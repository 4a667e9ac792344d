package fisher

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBinomial is returned by LogChoose when n or k is negative or k exceeds n.
var ErrInvalidBinomial = errors.New("invalid binomial coefficient")

// LogChoose returns log10 of the binomial coefficient C(n, k).
//
// k is reduced to min(k, n-k) first, so the loop runs at most n/2 times.
// LogChoose(n, 0) is 0 for every n >= 0.
func LogChoose(n, k int) (float64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrInvalidBinomial, n, k)
	}

	if k*2 > n {
		k = n - k
	}

	var r float64

	m := n
	for d := 1; d <= k; d++ {
		r += math.Log10(float64(m))
		m--
		r -= math.Log10(float64(d))
	}

	return r, nil
}

func mustLogChoose(n, k int) float64 {
	r, err := LogChoose(n, k)
	if err != nil {
		panic(err)
	}

	return r
}
