package numtheory

import "github.com/born-ml/mega/internal/numerr"

// EulerPhi evaluates Euler's totient φ(n), the count of 1 <= k <= n coprime to n.
type EulerPhi struct {
	n int64
}

// NewEulerPhi creates φ(n). n must be positive.
func NewEulerPhi(n int64) (*EulerPhi, error) {
	if n <= 0 {
		return nil, numerr.Invalid("euler phi: n must be positive, got %d", n)
	}
	return &EulerPhi{n: n}, nil
}

// N returns the argument n.
func (e *EulerPhi) N() int64 { return e.n }

// Compute returns φ(n) = n Π (1 - 1/p) over the distinct primes p | n.
// Each step divides before multiplying, which is exact because p divides the
// running value, so no intermediate leaves the integers or exceeds n.
func (e *EulerPhi) Compute() int64 {
	if e.n == 1 {
		return 1
	}
	primes, _ := DistinctPrimes(e.n)
	result := e.n
	for _, p := range primes {
		result = result / p * (p - 1)
	}
	return result
}
