// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "github.com/born-ml/adiff/internal/dual"

// Float is the set of numeric types a Dual can be built over.
type Float = dual.Float

// Dual is a dual number: Real + Dual·ϵ with ϵ² = 0.
type Dual[T Float] = dual.Dual[T]

// Number is the float64 dual number.
type Number = dual.Number

// New returns r + d·ϵ.
func New[T Float](r, d T) Dual[T] { return dual.New(r, d) }

// Const returns a constant (zero derivative).
func Const[T Float](v T) Dual[T] { return dual.Const(v) }

// Var returns a variable seeded with derivative one.
func Var[T Float](v T) Dual[T] { return dual.Var(v) }

// Zero returns (0, 0).
func Zero[T Float]() Dual[T] { return dual.Zero[T]() }

// One returns (1, 0).
func One[T Float]() Dual[T] { return dual.One[T]() }

// Minus returns (-1, 0).
func Minus[T Float]() Dual[T] { return dual.Minus[T]() }

// Add returns a + b.
func Add[T Float](a, b Dual[T]) Dual[T] { return dual.Add(a, b) }

// Sub returns a - b.
func Sub[T Float](a, b Dual[T]) Dual[T] { return dual.Sub(a, b) }

// Mul returns a * b.
func Mul[T Float](a, b Dual[T]) Dual[T] { return dual.Mul(a, b) }

// Div returns a / b.
func Div[T Float](a, b Dual[T]) Dual[T] { return dual.Div(a, b) }

// Neg returns -a.
func Neg[T Float](a Dual[T]) Dual[T] { return dual.Neg(a) }

// Scale returns k·a.
func Scale[T Float](k T, a Dual[T]) Dual[T] { return dual.Scale(k, a) }

// Sum returns the sum of xs.
func Sum[T Float](xs ...Dual[T]) Dual[T] { return dual.Sum(xs...) }

// Log returns ln(a).
func Log[T Float](a Dual[T]) Dual[T] { return dual.Log(a) }

// Exp returns e**a.
func Exp[T Float](a Dual[T]) Dual[T] { return dual.Exp(a) }

// Pow returns a**b.
func Pow[T Float](a, b Dual[T]) Dual[T] { return dual.Pow(a, b) }

// Sin returns sin(a).
func Sin[T Float](a Dual[T]) Dual[T] { return dual.Sin(a) }

// Cos returns cos(a).
func Cos[T Float](a Dual[T]) Dual[T] { return dual.Cos(a) }

// Tan returns tan(a).
func Tan[T Float](a Dual[T]) Dual[T] { return dual.Tan(a) }

// Asin returns asin(a).
func Asin[T Float](a Dual[T]) Dual[T] { return dual.Asin(a) }

// Acos returns acos(a).
func Acos[T Float](a Dual[T]) Dual[T] { return dual.Acos(a) }

// Atan returns atan(a).
func Atan[T Float](a Dual[T]) Dual[T] { return dual.Atan(a) }

// Gradient returns the gradient of f at x, one forward sweep per component.
func Gradient[T Float](f func([]Dual[T]) Dual[T], x []T) []T {
	return dual.Gradient(f, x)
}

// ValueAndGradient returns f(x) and its gradient.
func ValueAndGradient[T Float](f func([]Dual[T]) Dual[T], x []T) (T, []T) {
	return dual.ValueAndGradient(f, x)
}

// Derivative returns f(x) and f'(x) for a univariate f.
func Derivative[T Float](f func(Dual[T]) Dual[T], x T) (T, T) {
	return dual.Derivative(f, x)
}

// Directional returns the derivative of f at x along v.
func Directional[T Float](f func([]Dual[T]) Dual[T], x, v []T) T {
	return dual.Directional(f, x, v)
}
