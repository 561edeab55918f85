// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares analytic gradients with finite difference
// estimates.
//
// Example:
//
//	grad := dual.Gradient(f, x)
//	report, err := gradcheck.Check(plainF, grad, x, gradcheck.DefaultConfig())
package gradcheck

import "github.com/born-ml/adiff/internal/gradcheck"

// Config controls a gradient check.
type Config = gradcheck.Config

// Component is the outcome of checking one partial derivative.
type Component = gradcheck.Component

// Report collects per-component results.
type Report = gradcheck.Report

// Sentinel errors.
var (
	ErrMismatch = gradcheck.ErrMismatch
	ErrLength   = gradcheck.ErrLength
)

// DefaultConfig returns a central difference check with tolerance 1e-6.
func DefaultConfig() Config { return gradcheck.DefaultConfig() }

// Numerical estimates the gradient of f at x with finite differences.
func Numerical(f func([]float64) float64, x []float64, cfg Config) []float64 {
	return gradcheck.Numerical(f, x, cfg)
}

// Compare checks got against want component-wise within tol.
func Compare(want, got []float64, tol float64) error { return gradcheck.Compare(want, got, tol) }

// Check compares analytic against a finite difference estimate of f at x.
func Check(f func([]float64) float64, analytic, x []float64, cfg Config) (Report, error) {
	return gradcheck.Check(f, analytic, x, cfg)
}
