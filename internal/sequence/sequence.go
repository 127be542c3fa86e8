// Package sequence provides closed-form integer sequences and continued
// fraction constants: Lucas numbers, Catalan numbers and the golden ratio.
package sequence

import (
	"math"
	"math/bits"

	"github.com/born-ml/mega/internal/numerr"
)

// DefaultGoldenIterations is the continued-fraction depth used by callers that
// have no preference; it converges to float64 precision.
const DefaultGoldenIterations = 40

// LucasNumber returns L(n), with L(0) = 2, L(1) = 1 and L(n) = L(n-1) + L(n-2).
func LucasNumber(n int) (int64, error) {
	if n < 0 {
		return 0, numerr.Invalid("lucas: n must be >= 0, got %d", n)
	}
	if n == 0 {
		return 2, nil
	}
	a, b := int64(2), int64(1)
	for i := 1; i < n; i++ {
		if b > math.MaxInt64-a {
			return 0, numerr.Overflow("lucas number L(%d)", n)
		}
		a, b = b, a+b
	}
	return b, nil
}

// CatalanNumber returns C(n), using C(0) = 1 and C(k+1) = C(k)·2(2k+1)/(k+2).
func CatalanNumber(n int) (int64, error) {
	if n < 0 {
		return 0, numerr.Invalid("catalan: n must be >= 0, got %d", n)
	}
	c := uint64(1)
	for k := uint64(0); k < uint64(n); k++ {
		// c·2(2k+1) is divisible by k+2; use a 128-bit intermediate.
		hi, lo := bits.Mul64(c, 2*(2*k+1))
		if hi >= k+2 {
			return 0, numerr.Overflow("catalan number C(%d)", n)
		}
		c, _ = bits.Div64(hi, lo, k+2)
		if c > math.MaxInt64 {
			return 0, numerr.Overflow("catalan number C(%d)", n)
		}
	}
	return int64(c), nil //nolint:gosec // G115: range checked in the loop
}

// GoldenRatio approximates φ = (1 + √5)/2 by iterating x ← 1 + 1/x from x = 1.
// One iteration yields 2, two yield 1.5, and so on through ratios of
// consecutive Fibonacci numbers.
func GoldenRatio(iterations int) (float64, error) {
	if iterations < 1 {
		return 0, numerr.Invalid("golden ratio: iterations must be >= 1, got %d", iterations)
	}
	x := 1.0
	for i := 0; i < iterations; i++ {
		x = 1 + 1/x
	}
	return x, nil
}
