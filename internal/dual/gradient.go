package dual

import "fmt"

// Gradient returns the gradient of f at x.
//
// It runs one forward sweep per input dimension: the seed vector is built
// once with zero derivatives, then component i is set to 1, f is evaluated,
// the output derivative is read as grad[i] and component i is reset to 0.
// The cost is len(x) evaluations of f, so prefer the reverse sweep of the
// graph package when the input dimension is large.
//
// f must be a pure function of its argument. It must not retain or modify
// the slice it receives.
func Gradient[T Float](f func([]Dual[T]) Dual[T], x []T) []T {
	_, grad := ValueAndGradient(f, x)
	return grad
}

// ValueAndGradient returns f(x) together with its gradient.
//
// For len(x) == 0, f is evaluated once at the empty vector and the gradient
// is an empty, non-nil slice.
func ValueAndGradient[T Float](f func([]Dual[T]) Dual[T], x []T) (T, []T) {
	dx := make([]Dual[T], len(x))
	for i, xi := range x {
		dx[i] = Const(xi)
	}

	grad := make([]T, len(x))
	if len(x) == 0 {
		return f(dx).Real, grad
	}

	var value T
	for i := range dx {
		dx[i].Dual = 1
		out := f(dx)
		dx[i].Dual = 0

		grad[i] = out.Dual
		value = out.Real
	}

	return value, grad
}

// Derivative returns f(x) and f'(x) for a univariate f.
func Derivative[T Float](f func(Dual[T]) Dual[T], x T) (T, T) {
	out := f(Var(x))
	return out.Real, out.Dual
}

// Directional returns the derivative of f at x along direction v in a
// single forward sweep. It panics if x and v differ in length.
func Directional[T Float](f func([]Dual[T]) Dual[T], x, v []T) T {
	if len(x) != len(v) {
		panic(fmt.Sprintf("dual: Directional: len(x)=%d != len(v)=%d", len(x), len(v)))
	}
	dx := make([]Dual[T], len(x))
	for i := range x {
		dx[i] = New(x[i], v[i])
	}
	return f(dx).Dual
}
