package main

import (
	"math"

	"github.com/born-ml/adiff/dual"
	"github.com/born-ml/adiff/graph"
)

// testCase is one expression written three ways: on dual numbers, as an
// expression graph, and on plain floats for finite differences.
type testCase struct {
	name  string
	point []float64
	dual  func([]dual.Number) dual.Number
	graph func([]*graph.Node) *graph.Node
	plain func([]float64) float64
}

var cases = []testCase{
	{
		name:  "sum of squares",
		point: []float64{0.5, 0.1, 0.6},
		dual: func(x []dual.Number) dual.Number {
			two := dual.Const(2.0)
			return dual.Sum(dual.Pow(x[0], two), dual.Pow(x[1], two), dual.Pow(x[2], two))
		},
		graph: func(x []*graph.Node) *graph.Node {
			two := graph.Constant(2)
			return graph.Add(graph.Add(graph.Pow(x[0], two), graph.Pow(x[1], two)), graph.Pow(x[2], two))
		},
		plain: func(x []float64) float64 {
			return x[0]*x[0] + x[1]*x[1] + x[2]*x[2]
		},
	},
	{
		name:  "log exp",
		point: []float64{1.7},
		dual: func(x []dual.Number) dual.Number {
			return dual.Log(dual.Exp(x[0]))
		},
		graph: func(x []*graph.Node) *graph.Node {
			return graph.Log(graph.Exp(x[0]))
		},
		plain: func(x []float64) float64 {
			return math.Log(math.Exp(x[0]))
		},
	},
	{
		name:  "product",
		point: []float64{3, 4},
		dual: func(x []dual.Number) dual.Number {
			return dual.Mul(x[0], x[1])
		},
		graph: func(x []*graph.Node) *graph.Node {
			return graph.Mul(x[0], x[1])
		},
		plain: func(x []float64) float64 {
			return x[0] * x[1]
		},
	},
	{
		name:  "nested",
		point: []float64{0.5, 0.1, 0.6},
		dual: func(xs []dual.Number) dual.Number {
			x, y, z := xs[0], xs[1], xs[2]
			return dual.Sum(
				dual.Mul(dual.Add(x, y), z),
				dual.Log(dual.Mul(x, dual.Pow(x, y))),
				dual.Exp(dual.Sum(dual.Sin(x), dual.Cos(y), dual.Tan(z))),
				dual.Asin(dual.Acos(dual.Atan(dual.Sum(x, y, z)))),
				dual.Pow(x, dual.Sin(y)),
			)
		},
		graph: func(xs []*graph.Node) *graph.Node {
			x, y, z := xs[0], xs[1], xs[2]
			return graph.Add(
				graph.Add(
					graph.Add(
						graph.Mul(graph.Add(x, y), z),
						graph.Log(graph.Mul(x, graph.Pow(x, y))),
					),
					graph.Exp(graph.Add(graph.Add(graph.Sin(x), graph.Cos(y)), graph.Tan(z))),
				),
				graph.Add(
					graph.Asin(graph.Acos(graph.Atan(graph.Add(graph.Add(x, y), z)))),
					graph.Pow(x, graph.Sin(y)),
				),
			)
		},
		plain: func(xs []float64) float64 {
			x, y, z := xs[0], xs[1], xs[2]
			return (x+y)*z +
				math.Log(x*math.Pow(x, y)) +
				math.Exp(math.Sin(x)+math.Cos(y)+math.Tan(z)) +
				math.Asin(math.Acos(math.Atan(x+y+z))) +
				math.Pow(x, math.Sin(y))
		},
	},
	{
		name:  "quotient",
		point: []float64{-1.5, 2.25},
		dual: func(x []dual.Number) dual.Number {
			return dual.Div(dual.Sub(x[0], x[1]), dual.Add(dual.Mul(x[0], x[1]), dual.Const(3.0)))
		},
		graph: func(x []*graph.Node) *graph.Node {
			return graph.Div(graph.Sub(x[0], x[1]), graph.Add(graph.Mul(x[0], x[1]), graph.Constant(3)))
		},
		plain: func(x []float64) float64 {
			return (x[0] - x[1]) / (x[0]*x[1] + 3)
		},
	},
}
