// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"fmt"

	"github.com/born-ml/adiff/graph"
)

func ExampleNode_Backwards() {
	x := graph.NamedParameter("x", 3)
	y := graph.NamedParameter("y", 4)
	h := graph.Mul(x, y)

	h.Evaluate()
	h.Backwards(1)
	fmt.Println(h, "=", h.Value)
	fmt.Println(x.Derivative, y.Derivative)

	// Output:
	// (x * y) = 12
	// 4 3
}

func ExampleNode_Forwards() {
	x := graph.Parameter(0.5)
	f := graph.Log(graph.Exp(x))

	f.Forwards(x)
	fmt.Printf("%.2f %.2f\n", f.Value, f.Derivative)

	// Output:
	// 0.50 1.00
}

func ExampleGrad() {
	x := graph.Parameter(0.5)
	y := graph.Parameter(0.1)
	z := graph.Parameter(0.6)
	two := graph.Constant(2)
	f := graph.Add(graph.Add(graph.Pow(x, two), graph.Pow(y, two)), graph.Pow(z, two))

	fmt.Printf("%.1f\n", graph.Grad(f, x, y, z))

	// Output:
	// [1.0 0.2 1.2]
}
