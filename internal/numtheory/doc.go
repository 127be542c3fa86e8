// Package numtheory implements the arithmetic functions built on integer
// factorization: the divisor-power sum σ_z, Euler's totient φ and Jordan's
// totient J_k.
//
// Factorization uses trial division up to floor(sqrt(n)), so every evaluator
// costs O(sqrt(n)). All arithmetic on integer results is exact; functions whose
// result can exceed int64 either report numerr.ErrOverflow or, for σ_z, fall
// back to a real-valued sum.
package numtheory
