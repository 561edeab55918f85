// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"fmt"

	"github.com/born-ml/adiff/graph"
	"github.com/born-ml/adiff/optim"
)

func ExampleMinimize() {
	x := graph.NamedParameter("x", 0)
	loss := graph.Pow(graph.Sub(x, graph.Constant(3)), graph.Constant(2))

	opt := optim.NewSGD(graph.Parameters(loss), optim.SGDConfig{LR: 0.1})
	optim.Minimize(loss, opt, 200)
	fmt.Printf("x=%.3f\n", x.Value)

	// Output:
	// x=3.000
}
