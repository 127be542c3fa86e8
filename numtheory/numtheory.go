// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numtheory provides arithmetic functions built on prime factorization.
//
// Each evaluator validates its parameters at construction and exposes a
// Compute method:
//   - SigmaZ: divisor-power sum σ_z(n), returning a tagged Number
//   - EulerPhi: Euler's totient φ(n)
//   - JordanTotient: generalized totient J_k(n)
//
// Example:
//
//	s, _ := numtheory.NewSigmaZ(28, 1)
//	fmt.Println(s.Compute()) // 56
package numtheory

import (
	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/numtheory"
)

// Type aliases for public API

// Number is a tagged numeric result: exact integer, real or complex.
type Number = numtheory.Number

// Kind tags the representation held by a Number.
type Kind = numtheory.Kind

// Result kinds.
const (
	KindInt     Kind = numtheory.KindInt
	KindReal    Kind = numtheory.KindReal
	KindComplex Kind = numtheory.KindComplex
)

// PrimePower is one term p^e of a prime factorization.
type PrimePower = numtheory.PrimePower

// SigmaZ evaluates the divisor-power sum σ_z(n).
type SigmaZ = numtheory.SigmaZ

// EulerPhi evaluates Euler's totient φ(n).
type EulerPhi = numtheory.EulerPhi

// JordanTotient evaluates the generalized totient J_k(n).
type JordanTotient = numtheory.JordanTotient

// Errors

var (
	// ErrInvalidArgument is wrapped by every construction error.
	ErrInvalidArgument = numerr.ErrInvalidArgument
	// ErrOverflow is wrapped when an exact result does not fit in int64.
	ErrOverflow = numerr.ErrOverflow
)

// NewSigmaZ creates σ_z(n) for a real exponent.
func NewSigmaZ(n int64, z float64) (*SigmaZ, error) {
	return numtheory.NewSigmaZ(n, z)
}

// NewSigmaZComplex creates σ_z(n) for a complex exponent.
func NewSigmaZComplex(n int64, z complex128) (*SigmaZ, error) {
	return numtheory.NewSigmaZComplex(n, z)
}

// NewEulerPhi creates φ(n).
func NewEulerPhi(n int64) (*EulerPhi, error) {
	return numtheory.NewEulerPhi(n)
}

// NewJordanTotient creates J_k(n).
func NewJordanTotient(n, k int64) (*JordanTotient, error) {
	return numtheory.NewJordanTotient(n, k)
}

// Factorize returns the prime factorization of n >= 1 by trial division.
func Factorize(n int64) ([]PrimePower, error) {
	return numtheory.Factorize(n)
}

// Divisors returns the positive divisors of n >= 1 in ascending order.
func Divisors(n int64) ([]int64, error) {
	return numtheory.Divisors(n)
}

// MaxSieveLimit is the largest limit Sieve accepts.
const MaxSieveLimit = numtheory.MaxSieveLimit

// Sieve returns the primes up to limit in ascending order.
func Sieve(limit int) ([]int, error) {
	return numtheory.Sieve(limit)
}
