package numtheory

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/mega/internal/numerr"
)

// SigmaZ evaluates the divisor-power sum σ_z(n) = Σ_{d | n} d^z.
type SigmaZ struct {
	n int64
	z complex128
}

// NewSigmaZ creates σ_z(n) for a real exponent z.
func NewSigmaZ(n int64, z float64) (*SigmaZ, error) {
	return NewSigmaZComplex(n, complex(z, 0))
}

// NewSigmaZComplex creates σ_z(n) for a complex exponent z.
// n must be positive and z must be finite with a non-negative real part.
func NewSigmaZComplex(n int64, z complex128) (*SigmaZ, error) {
	if n <= 0 {
		return nil, numerr.Invalid("sigma: n must be positive, got %d", n)
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return nil, numerr.Invalid("sigma: exponent must be finite, got %v", z)
	}
	if real(z) < 0 {
		return nil, numerr.Invalid("sigma: exponent real part must be >= 0, got %v", real(z))
	}
	return &SigmaZ{n: n, z: z}, nil
}

// N returns the argument n.
func (s *SigmaZ) N() int64 { return s.n }

// Z returns the exponent z.
func (s *SigmaZ) Z() complex128 { return s.z }

// Compute returns σ_z(n).
//
// The result kind follows the exponent: a non-zero imaginary part yields
// KindComplex, an integer-valued real exponent yields an exact KindInt (or
// KindReal if the sum exceeds int64), any other real exponent yields KindReal.
func (s *SigmaZ) Compute() Number {
	divisors, _ := Divisors(s.n) // n > 0 is guaranteed by construction

	if imag(s.z) != 0 {
		var sum complex128
		for _, d := range divisors {
			sum += cmplx.Pow(complex(float64(d), 0), s.z)
		}
		return ComplexNumber(sum)
	}

	z := real(s.z)
	if z == math.Trunc(z) && z < math.MaxInt64 {
		if sum, ok := exactSum(divisors, int64(z)); ok {
			return IntNumber(sum)
		}
	}

	var sum float64
	for _, d := range divisors {
		sum += math.Pow(float64(d), z)
	}
	return RealNumber(sum)
}

// exactSum returns Σ d^z in int64, reporting false on overflow.
func exactSum(divisors []int64, z int64) (int64, bool) {
	var sum int64
	for _, d := range divisors {
		term, ok := IPow(d, z)
		if !ok {
			return 0, false
		}
		if sum, ok = addChecked(sum, term); !ok {
			return 0, false
		}
	}
	return sum, true
}
