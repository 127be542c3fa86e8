// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sequence provides Lucas numbers, Catalan numbers and a continued
// fraction approximation of the golden ratio.
package sequence

import (
	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/sequence"
)

// DefaultGoldenIterations converges GoldenRatio to float64 precision.
const DefaultGoldenIterations = sequence.DefaultGoldenIterations

var (
	// ErrInvalidArgument is wrapped for negative indices or iteration counts.
	ErrInvalidArgument = numerr.ErrInvalidArgument
	// ErrOverflow is wrapped when a term does not fit in int64.
	ErrOverflow = numerr.ErrOverflow
)

// LucasNumber returns L(n).
func LucasNumber(n int) (int64, error) {
	return sequence.LucasNumber(n)
}

// CatalanNumber returns C(n).
func CatalanNumber(n int) (int64, error) {
	return sequence.CatalanNumber(n)
}

// GoldenRatio iterates x ← 1 + 1/x from x = 1 the given number of times.
func GoldenRatio(iterations int) (float64, error) {
	return sequence.GoldenRatio(iterations)
}
