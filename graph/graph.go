// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides forward- and reverse-mode automatic differentiation
// over expression graphs.
//
// # Building Graphs
//
// Graphs are built bottom-up from leaves and operator nodes. Reusing a node
// pointer shares the sub-expression:
//
//	x := graph.NamedParameter("x", 3)
//	y := graph.NamedParameter("y", 4)
//	f := graph.Add(graph.Mul(x, y), graph.Sin(x)) // x is shared
//
// # Sweeps
//
// Evaluate computes values; Forwards(p) computes values and ∂/∂p; Backwards
// distributes adjoints to every parameter in a single reverse sweep:
//
//	graph.ZeroGrad(f)
//	f.Evaluate()
//	f.Backwards(1)
//	// x.Derivative == ∂f/∂x, y.Derivative == ∂f/∂y
//
// Backwards accumulates. Grad wraps the reset, evaluate and reverse steps
// and returns the gradient directly.
//
// # Concurrency
//
// Sweeps mutate node state. A graph must not be traversed by more than one
// goroutine at a time.
package graph

import "github.com/born-ml/adiff/internal/graph"

// Node is a vertex of an expression graph.
type Node = graph.Node

// Kind identifies the operation a Node performs.
type Kind = graph.Kind

// Node kinds.
const (
	KindInvalid   = graph.KindInvalid
	KindConstant  = graph.KindConstant
	KindParameter = graph.KindParameter
	KindAdd       = graph.KindAdd
	KindSub       = graph.KindSub
	KindMul       = graph.KindMul
	KindDiv       = graph.KindDiv
	KindPow       = graph.KindPow
	KindLog       = graph.KindLog
	KindExp       = graph.KindExp
	KindSin       = graph.KindSin
	KindCos       = graph.KindCos
	KindTan       = graph.KindTan
	KindAsin      = graph.KindAsin
	KindAcos      = graph.KindAcos
	KindAtan      = graph.KindAtan
)

// Constant returns a leaf holding a fixed value.
func Constant(v float64) *Node { return graph.Constant(v) }

// Parameter returns an independent variable initialised to v.
func Parameter(v float64) *Node { return graph.Parameter(v) }

// NamedParameter returns an independent variable with a display name.
func NamedParameter(name string, v float64) *Node { return graph.NamedParameter(name, v) }

// Add returns a + b.
func Add(a, b *Node) *Node { return graph.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Node) *Node { return graph.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Node) *Node { return graph.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Node) *Node { return graph.Div(a, b) }

// Pow returns a ** b.
func Pow(a, b *Node) *Node { return graph.Pow(a, b) }

// Log returns ln(a).
func Log(a *Node) *Node { return graph.Log(a) }

// Exp returns e**a.
func Exp(a *Node) *Node { return graph.Exp(a) }

// Sin returns sin(a).
func Sin(a *Node) *Node { return graph.Sin(a) }

// Cos returns cos(a).
func Cos(a *Node) *Node { return graph.Cos(a) }

// Tan returns tan(a).
func Tan(a *Node) *Node { return graph.Tan(a) }

// Asin returns asin(a).
func Asin(a *Node) *Node { return graph.Asin(a) }

// Acos returns acos(a).
func Acos(a *Node) *Node { return graph.Acos(a) }

// Atan returns atan(a).
func Atan(a *Node) *Node { return graph.Atan(a) }

// Parameters returns the distinct parameters reachable from root.
func Parameters(root *Node) []*Node { return graph.Parameters(root) }

// ZeroGrad resets Derivative on every node reachable from root.
func ZeroGrad(root *Node) { graph.ZeroGrad(root) }

// Grad returns ∂root/∂params from one reverse sweep.
func Grad(root *Node, params ...*Node) []float64 { return graph.Grad(root, params...) }

// ValueAndGrad returns the value of root and ∂root/∂params.
func ValueAndGrad(root *Node, params ...*Node) (float64, []float64) {
	return graph.ValueAndGrad(root, params...)
}

// ForwardGrad returns ∂root/∂params from one forward sweep per parameter.
func ForwardGrad(root *Node, params ...*Node) []float64 { return graph.ForwardGrad(root, params...) }
