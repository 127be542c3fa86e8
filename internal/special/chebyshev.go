package special

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/numtheory"
)

// ChebyshevFunction evaluates the first Chebyshev function θ(x) = Σ_{p <= x} ln p.
//
// Each instance also owns an integer-keyed cache that callers may read and
// write freely, e.g. to seed partial sums shared across evaluations. Compute
// never reads or writes the cache. Neither Compute nor the cache methods are
// safe for concurrent mutation without external locking.
type ChebyshevFunction struct {
	x     float64
	cache map[int]float64
}

// NewChebyshevFunction creates θ(x). x must be finite, non-negative and
// below numtheory.MaxSieveLimit+1.
func NewChebyshevFunction(x float64) (*ChebyshevFunction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, numerr.Invalid("chebyshev: x must be finite, got %v", x)
	}
	if x < 0 {
		return nil, numerr.Invalid("chebyshev: x must be >= 0, got %v", x)
	}
	if x >= numtheory.MaxSieveLimit+1 {
		return nil, numerr.Invalid("chebyshev: x must be < %d, got %v", numtheory.MaxSieveLimit+1, x)
	}
	return &ChebyshevFunction{
		x:     x,
		cache: make(map[int]float64),
	}, nil
}

// X returns the argument.
func (c *ChebyshevFunction) X() float64 { return c.x }

// Compute returns θ(x) by sieving the primes up to floor(x).
func (c *ChebyshevFunction) Compute() float64 {
	primes, _ := numtheory.Sieve(int(math.Floor(c.x))) // x is bounded by the constructor
	if len(primes) == 0 {
		return 0
	}
	logs := make([]float64, len(primes))
	for i, p := range primes {
		logs[i] = math.Log(float64(p))
	}
	return floats.Sum(logs)
}

// CacheGet returns the cached value for key and whether it was present.
func (c *ChebyshevFunction) CacheGet(key int) (float64, bool) {
	v, ok := c.cache[key]
	return v, ok
}

// CacheSet stores value under key, replacing any previous value.
func (c *ChebyshevFunction) CacheSet(key int, value float64) {
	c.cache[key] = value
}

// CacheDelete removes key from the cache.
func (c *ChebyshevFunction) CacheDelete(key int) {
	delete(c.cache, key)
}

// CacheLen returns the number of cached entries.
func (c *ChebyshevFunction) CacheLen() int {
	return len(c.cache)
}
