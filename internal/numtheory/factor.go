package numtheory

import (
	"math"
	"math/bits"

	"github.com/born-ml/mega/internal/numerr"
)

// PrimePower is one term p^e of a prime factorization.
type PrimePower struct {
	Prime    int64
	Exponent int
}

// Factorize returns the prime factorization of n in ascending prime order.
// Factorize(1) is empty.
func Factorize(n int64) ([]PrimePower, error) {
	if n < 1 {
		return nil, numerr.Invalid("factorize: n must be >= 1, got %d", n)
	}

	var factors []PrimePower
	for p := int64(2); p <= n/p; p++ {
		if n%p != 0 {
			continue
		}
		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		factors = append(factors, PrimePower{Prime: p, Exponent: e})
	}
	// Whatever survives trial division is a single prime.
	if n > 1 {
		factors = append(factors, PrimePower{Prime: n, Exponent: 1})
	}
	return factors, nil
}

// DistinctPrimes returns the distinct prime divisors of n in ascending order.
func DistinctPrimes(n int64) ([]int64, error) {
	factors, err := Factorize(n)
	if err != nil {
		return nil, err
	}
	primes := make([]int64, len(factors))
	for i, f := range factors {
		primes[i] = f.Prime
	}
	return primes, nil
}

// Divisors returns every positive divisor of n in ascending order.
// Candidates d <= floor(sqrt(n)) are paired with n/d, counting d == n/d once.
func Divisors(n int64) ([]int64, error) {
	if n < 1 {
		return nil, numerr.Invalid("divisors: n must be >= 1, got %d", n)
	}

	var low, high []int64
	for d := int64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if q := n / d; q != d {
			high = append(high, q)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low, nil
}

// IPow returns base^exp for exp >= 0 and reports whether the result fit in int64.
func IPow(base int64, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulChecked(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = mulChecked(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// mulChecked multiplies two int64 values and reports whether the product fit.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return int64(-lo), true //nolint:gosec // G115: range checked above
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// addChecked adds two int64 values and reports whether the sum fit.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1 //nolint:gosec // G115: handles MinInt64 without overflow
	}
	return uint64(v)
}

// MaxSieveLimit is the largest limit Sieve accepts; the sieve allocates one
// byte per candidate.
const MaxSieveLimit = 100_000_000

// Sieve returns every prime p <= limit in ascending order (sieve of Eratosthenes).
// Limits above MaxSieveLimit return ErrInvalidArgument.
func Sieve(limit int) ([]int, error) {
	if limit > MaxSieveLimit {
		return nil, numerr.Invalid("sieve: limit %d exceeds %d", limit, MaxSieveLimit)
	}
	if limit < 2 {
		return nil, nil
	}
	composite := make([]bool, limit+1)
	var primes []int
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}
	return primes, nil
}
