// Package special implements real-valued special functions: the Gamma
// function, the first Chebyshev function θ(x) and the haversine.
package special

import (
	"math"

	"github.com/born-ml/mega/internal/numerr"
)

// Lanczos approximation parameters (g = 7, n = 9).
const lanczosG = 7.0

var lanczosCoefficients = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// maxExactFactorialArg is the largest n for which (n-1)! fits in uint64.
const maxExactFactorialArg = 21

// Gamma evaluates Γ(z) for real z.
type Gamma struct {
	z float64
}

// NewGamma creates Γ(z). Any real z is accepted, including poles, which are
// reported by Compute. NaN is rejected.
func NewGamma(z float64) (*Gamma, error) {
	if math.IsNaN(z) {
		return nil, numerr.Invalid("gamma: z is NaN")
	}
	return &Gamma{z: z}, nil
}

// Z returns the argument.
func (g *Gamma) Z() float64 { return g.z }

// Compute returns Γ(z).
//
// Positive integers use the exact factorial (n-1)!. Arguments below 0.5 use
// the reflection formula Γ(z)Γ(1-z) = π / sin(πz); everything else uses the
// Lanczos approximation. Non-positive integers are poles and yield
// numerr.ErrDomain. Results beyond float64 range are ±Inf.
func (g *Gamma) Compute() (float64, error) {
	z := g.z
	if math.IsInf(z, 1) {
		return math.Inf(1), nil
	}
	if math.IsInf(z, -1) {
		return 0, numerr.Domain("gamma: undefined at -Inf")
	}
	if z == math.Trunc(z) {
		if z <= 0 {
			return 0, numerr.Domain("gamma: pole at %g", z)
		}
		return factorial(z - 1), nil
	}
	return gamma(z), nil
}

// factorial returns m! for a non-negative integer-valued m, multiplying in
// uint64 while the product is exact and in float64 afterwards.
func factorial(m float64) float64 {
	if m >= 171 {
		return math.Inf(1)
	}
	n := int(m)
	exact := uint64(1)
	k := 2
	for ; k <= n && k < maxExactFactorialArg; k++ {
		exact *= uint64(k)
	}
	result := float64(exact)
	for ; k <= n; k++ {
		result *= float64(k)
	}
	return result
}

// gamma evaluates Γ(z) for non-integer z.
func gamma(z float64) float64 {
	if z < 0.5 {
		return math.Pi / (math.Sin(math.Pi*z) * gamma(1-z))
	}
	return lanczos(z)
}

// lanczos evaluates Γ(z) for z >= 0.5.
func lanczos(z float64) float64 {
	z--
	a := lanczosCoefficients[0]
	t := z + lanczosG + 0.5
	for i := 1; i < len(lanczosCoefficients); i++ {
		a += lanczosCoefficients[i] / (z + float64(i))
	}
	// Split t^(z+0.5) to keep the intermediate finite up to z ~ 171.
	half := math.Pow(t, (z+0.5)/2)
	return math.Sqrt(2*math.Pi) * half * (half * math.Exp(-t)) * a
}
