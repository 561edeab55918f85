package optim

import "github.com/born-ml/adiff/internal/graph"

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*graph.Node
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates an SGD optimizer over params. It panics if any element is
// not a parameter node.
func NewSGD(params []*graph.Node, config SGDConfig) *SGD {
	checkParams(params)
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step applies one update to every parameter.
func (s *SGD) Step() {
	for i, p := range s.params {
		g := p.Derivative
		if s.momentum != 0 {
			s.velocities[i] = s.momentum*s.velocities[i] + g
			g = s.velocities[i]
		}
		p.Value -= s.lr * g
	}
}

// ZeroGrad resets parameter derivatives.
func (s *SGD) ZeroGrad() { zeroGrad(s.params) }

// LR returns the learning rate.
func (s *SGD) LR() float64 { return s.lr }
