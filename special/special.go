// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package special provides real-valued special functions.
//
//   - Gamma: Γ(z) with exact factorials at positive integers
//   - ChebyshevFunction: first Chebyshev function θ(x) = Σ_{p ≤ x} ln p
//   - Haversine: hav(θ) = sin²(θ/2), plus GreatCircleDistance
//
// Example:
//
//	g, _ := special.NewGamma(5)
//	v, _ := g.Compute() // 24
package special

import (
	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/special"
)

// Gamma evaluates the gamma function.
type Gamma = special.Gamma

// ChebyshevFunction evaluates θ(x) and carries an auxiliary value cache.
type ChebyshevFunction = special.ChebyshevFunction

// Haversine evaluates sin²(θ/2).
type Haversine = special.Haversine

// EarthRadiusKm is the mean Earth radius used by GreatCircleDistance callers.
const EarthRadiusKm = special.EarthRadiusKm

var (
	// ErrInvalidArgument is wrapped by every construction error.
	ErrInvalidArgument = numerr.ErrInvalidArgument
	// ErrDomain is wrapped when Γ is evaluated at a pole.
	ErrDomain = numerr.ErrDomain
)

// NewGamma creates Γ(z).
func NewGamma(z float64) (*Gamma, error) {
	return special.NewGamma(z)
}

// NewChebyshevFunction creates θ(x).
func NewChebyshevFunction(x float64) (*ChebyshevFunction, error) {
	return special.NewChebyshevFunction(x)
}

// NewHaversine creates hav(θ) for an angle in radians.
func NewHaversine(theta float64) *Haversine {
	return special.NewHaversine(theta)
}

// GreatCircleDistance returns the haversine distance between two points given
// in degrees on a sphere of the given radius.
func GreatCircleDistance(lat1, lon1, lat2, lon2, radius float64) (float64, error) {
	return special.GreatCircleDistance(lat1, lon1, lat2, lon2, radius)
}
