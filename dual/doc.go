// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation with dual numbers.
//
// # Overview
//
// A dual number carries a value and its derivative along one seeded
// direction. Arithmetic and elementary functions propagate both at once:
//
//	x := dual.Var(0.5)                      // (0.5, 1): seeded variable
//	y := dual.Mul(dual.Sin(x), dual.Exp(x)) // (sin·exp, d/dx sin·exp)
//
// # Gradients
//
// Gradient runs one sweep per input dimension:
//
//	f := func(x []dual.Number) dual.Number {
//	    two := dual.Const(2.0)
//	    return dual.Sum(dual.Pow(x[0], two), dual.Pow(x[1], two), dual.Pow(x[2], two))
//	}
//	grad := dual.Gradient(f, []float64{0.5, 0.1, 0.6}) // [1 0.2 1.2]
//
// For large input dimensions prefer the reverse sweep of package graph.
//
// # Numeric Domain
//
// Division by zero, logarithms of non-positive values and inverse
// trigonometric functions outside [-1, 1] yield NaN or ±Inf following
// IEEE-754. No function in this package panics on numeric input.
package dual
