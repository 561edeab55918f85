// Package dual implements forward-mode automatic differentiation with dual numbers.
//
// A dual number pairs a primal value with its directional derivative:
//
//	x = Real + Dual·ϵ,  ϵ² = 0
//
// Every function in this package maps (f(t), f'(t)) to (g(t), g'(t)) for the
// corresponding composition g, so derivatives propagate through arbitrary
// compositions without any graph bookkeeping.
//
// Domain violations (division by zero, log of a non-positive value, inverse
// trigonometric functions outside [-1, 1]) follow IEEE-754 semantics and yield
// NaN or ±Inf. Nothing in this package panics on numeric input.
package dual

import (
	"fmt"
	"math"
)

// Float is the set of numeric types a Dual can be built over.
type Float interface {
	~float32 | ~float64
}

// Dual is a dual number over T.
type Dual[T Float] struct {
	Real T // primal value
	Dual T // derivative along the seeded direction
}

// Number is the float64 dual number used by default.
type Number = Dual[float64]

// New returns the dual number r + d·ϵ.
func New[T Float](r, d T) Dual[T] {
	return Dual[T]{Real: r, Dual: d}
}

// Const returns a constant: its derivative is zero.
func Const[T Float](v T) Dual[T] {
	return Dual[T]{Real: v}
}

// Var returns an independent variable seeded with derivative one.
func Var[T Float](v T) Dual[T] {
	return Dual[T]{Real: v, Dual: 1}
}

// Zero returns (0, 0).
func Zero[T Float]() Dual[T] { return Dual[T]{} }

// One returns (1, 0).
func One[T Float]() Dual[T] { return Dual[T]{Real: 1} }

// Minus returns (-1, 0).
func Minus[T Float]() Dual[T] { return Dual[T]{Real: -1} }

// String formats d as (real+dualϵ).
func (d Dual[T]) String() string {
	return fmt.Sprintf("(%v%+vϵ)", float64(d.Real), float64(d.Dual))
}

// Add returns a + b.
func Add[T Float](a, b Dual[T]) Dual[T] {
	return Dual[T]{
		Real: a.Real + b.Real,
		Dual: a.Dual + b.Dual,
	}
}

// Sub returns a - b.
func Sub[T Float](a, b Dual[T]) Dual[T] {
	return Dual[T]{
		Real: a.Real - b.Real,
		Dual: a.Dual - b.Dual,
	}
}

// Mul returns a * b using the product rule.
func Mul[T Float](a, b Dual[T]) Dual[T] {
	return Dual[T]{
		Real: a.Real * b.Real,
		Dual: a.Real*b.Dual + a.Dual*b.Real,
	}
}

// Div returns a / b using the quotient rule.
//
// A zero b.Real yields ±Inf or NaN in both components.
func Div[T Float](a, b Dual[T]) Dual[T] {
	return Dual[T]{
		Real: a.Real / b.Real,
		Dual: (a.Dual*b.Real - a.Real*b.Dual) / (b.Real * b.Real),
	}
}

// Neg returns -a.
func Neg[T Float](a Dual[T]) Dual[T] {
	return Dual[T]{Real: -a.Real, Dual: -a.Dual}
}

// Scale returns k·a for a plain constant k.
func Scale[T Float](k T, a Dual[T]) Dual[T] {
	return Dual[T]{Real: k * a.Real, Dual: k * a.Dual}
}

// Sum folds Add over xs. An empty slice sums to Zero.
func Sum[T Float](xs ...Dual[T]) Dual[T] {
	var acc Dual[T]
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// Log returns the natural logarithm of a.
//
// Special cases:
//
//	Log(0+xϵ)  = -Inf + (x/0)ϵ
//	Log(a<0)   = NaN + (x/a)ϵ
func Log[T Float](a Dual[T]) Dual[T] {
	return Dual[T]{
		Real: T(math.Log(float64(a.Real))),
		Dual: a.Dual / a.Real,
	}
}

// Exp returns e**a.
func Exp[T Float](a Dual[T]) Dual[T] {
	e := T(math.Exp(float64(a.Real)))
	return Dual[T]{Real: e, Dual: a.Dual * e}
}

// Pow returns a**b.
//
// The derivative is b·a^(b-1)·a' + a^b·ln(a)·b', which is the generalized
// power rule a^b·(b'·ln(a) + b·a'/a) rewritten so that a constant exponent
// (b' == 0) stays finite for a <= 0. When b' != 0 the ln(a) term is required
// and a non-positive base yields a NaN derivative.
func Pow[T Float](a, b Dual[T]) Dual[T] {
	ar, br := float64(a.Real), float64(b.Real)
	p := math.Pow(ar, br)
	var d float64
	if a.Dual != 0 {
		d = br * math.Pow(ar, br-1) * float64(a.Dual)
	}
	if b.Dual != 0 {
		d += p * math.Log(ar) * float64(b.Dual)
	}
	return Dual[T]{Real: T(p), Dual: T(d)}
}

// Sin returns the sine of a.
func Sin[T Float](a Dual[T]) Dual[T] {
	s, c := math.Sincos(float64(a.Real))
	return Dual[T]{Real: T(s), Dual: a.Dual * T(c)}
}

// Cos returns the cosine of a.
func Cos[T Float](a Dual[T]) Dual[T] {
	s, c := math.Sincos(float64(a.Real))
	return Dual[T]{Real: T(c), Dual: -a.Dual * T(s)}
}

// Tan returns the tangent of a.
//
// At odd multiples of π/2 the derivative grows without bound; the exact
// pole is not representable so results are large but finite.
func Tan[T Float](a Dual[T]) Dual[T] {
	c := math.Cos(float64(a.Real))
	return Dual[T]{
		Real: T(math.Tan(float64(a.Real))),
		Dual: a.Dual / T(c*c),
	}
}

// Asin returns the arcsine of a. |a.Real| > 1 yields NaN in both components.
func Asin[T Float](a Dual[T]) Dual[T] {
	r := float64(a.Real)
	return Dual[T]{
		Real: T(math.Asin(r)),
		Dual: a.Dual / T(math.Sqrt(1-r*r)),
	}
}

// Acos returns the arccosine of a. |a.Real| > 1 yields NaN in both components.
func Acos[T Float](a Dual[T]) Dual[T] {
	r := float64(a.Real)
	return Dual[T]{
		Real: T(math.Acos(r)),
		Dual: -a.Dual / T(math.Sqrt(1-r*r)),
	}
}

// Atan returns the arctangent of a.
func Atan[T Float](a Dual[T]) Dual[T] {
	return Dual[T]{
		Real: T(math.Atan(float64(a.Real))),
		Dual: a.Dual / (1 + a.Real*a.Real),
	}
}
