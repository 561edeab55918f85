// Package optim implements first-order optimizers over expression graph parameters.
//
// Optimizers read the adjoint accumulated in each parameter's Derivative by a
// reverse sweep and update its Value in place. Because Backwards accumulates,
// ZeroGrad must run before each sweep:
//
//	opt := optim.NewAdam(graph.Parameters(loss), optim.AdamConfig{LR: 0.05})
//	for range steps {
//	    opt.ZeroGrad()
//	    loss.Evaluate()
//	    loss.Backwards(1)
//	    opt.Step()
//	}
//
// Minimize wraps that loop.
package optim

import (
	"fmt"

	"github.com/born-ml/adiff/internal/graph"
)

// Optimizer updates graph parameters from their accumulated adjoints.
type Optimizer interface {
	// Step applies one update to every parameter using its Derivative.
	Step()

	// ZeroGrad resets Derivative on every parameter.
	ZeroGrad()

	// LR returns the learning rate.
	LR() float64
}

func checkParams(params []*graph.Node) {
	for i, p := range params {
		if p == nil || p.Kind() != graph.KindParameter {
			panic(fmt.Sprintf("optim: param %d is not a graph parameter", i))
		}
	}
}

func zeroGrad(params []*graph.Node) {
	for _, p := range params {
		p.Derivative = 0
	}
}

// Minimize runs steps iterations of opt on loss and returns the final loss
// value.
func Minimize(loss *graph.Node, opt Optimizer, steps int) float64 {
	for i := 0; i < steps; i++ {
		graph.ZeroGrad(loss)
		opt.ZeroGrad()
		loss.Evaluate()
		loss.Backwards(1)
		opt.Step()
	}
	loss.Evaluate()
	return loss.Value
}
