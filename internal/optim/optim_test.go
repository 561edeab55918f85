package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adiff/internal/graph"
	"github.com/born-ml/adiff/internal/optim"
)

// quadratic returns (x-3)² + (y+1)² and its parameters.
func quadratic() (*graph.Node, *graph.Node, *graph.Node) {
	x := graph.NamedParameter("x", 0)
	y := graph.NamedParameter("y", 0)
	two := graph.Constant(2)
	loss := graph.Add(
		graph.Pow(graph.Sub(x, graph.Constant(3)), two),
		graph.Pow(graph.Add(y, graph.Constant(1)), two),
	)
	return loss, x, y
}

func TestSGD_SimpleUpdate(t *testing.T) {
	x := graph.Parameter(2)
	opt := optim.NewSGD([]*graph.Node{x}, optim.SGDConfig{LR: 0.1})

	x.Derivative = 1
	opt.Step()

	assert.InDelta(t, 1.9, x.Value, 1e-12)
	assert.Equal(t, 0.1, opt.LR())
}

func TestSGD_Momentum(t *testing.T) {
	x := graph.Parameter(2)
	opt := optim.NewSGD([]*graph.Node{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	x.Derivative = 1
	opt.Step()
	assert.InDelta(t, 1.9, x.Value, 1e-12)

	opt.Step()
	// velocity = 0.9*1 + 1 = 1.9
	assert.InDelta(t, 1.71, x.Value, 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	opt := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, opt.LR())
}

func TestAdam_FirstStep(t *testing.T) {
	x := graph.Parameter(2)
	opt := optim.NewAdam([]*graph.Node{x}, optim.AdamConfig{LR: 0.1})

	x.Derivative = 1
	opt.Step()

	// Bias-corrected moments are both 1 after one step.
	assert.InDelta(t, 1.9, x.Value, 1e-6)
	assert.Equal(t, 1, opt.StepCount())
	assert.Equal(t, 0.1, opt.LR())
}

func TestZeroGrad(t *testing.T) {
	x := graph.Parameter(2)
	y := graph.Parameter(3)
	x.Derivative, y.Derivative = 5, 6

	optim.NewAdam([]*graph.Node{x, y}, optim.AdamConfig{}).ZeroGrad()
	assert.Zero(t, x.Derivative)
	assert.Zero(t, y.Derivative)
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		name  string
		build func([]*graph.Node) optim.Optimizer
		steps int
	}{
		{
			name: "sgd",
			build: func(p []*graph.Node) optim.Optimizer {
				return optim.NewSGD(p, optim.SGDConfig{LR: 0.1})
			},
			steps: 200,
		},
		{
			name: "sgd momentum",
			build: func(p []*graph.Node) optim.Optimizer {
				return optim.NewSGD(p, optim.SGDConfig{LR: 0.05, Momentum: 0.5})
			},
			steps: 300,
		},
		{
			name: "adam",
			build: func(p []*graph.Node) optim.Optimizer {
				return optim.NewAdam(p, optim.AdamConfig{LR: 0.1})
			},
			steps: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss, x, y := quadratic()
			params := graph.Parameters(loss)
			require.Len(t, params, 2)

			final := optim.Minimize(loss, tt.build(params), tt.steps)

			assert.Less(t, final, 1e-6)
			assert.InDelta(t, 3.0, x.Value, 1e-3)
			assert.InDelta(t, -1.0, y.Value, 1e-3)
		})
	}
}

func TestRejectsNonParameters(t *testing.T) {
	c := graph.Constant(1)
	assert.PanicsWithValue(t, "optim: param 0 is not a graph parameter", func() {
		optim.NewSGD([]*graph.Node{c}, optim.SGDConfig{})
	})
	assert.Panics(t, func() {
		optim.NewAdam([]*graph.Node{graph.Parameter(1), nil}, optim.AdamConfig{})
	})
}
