package optim

import (
	"math"

	"github.com/born-ml/adiff/internal/graph"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*graph.Node
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int       // timestep for bias correction
	m      []float64 // first moment estimates
	v      []float64 // second moment estimates
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Running average coefficients (default: [0.9, 0.999])
	Eps   float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates an Adam optimizer over params, filling unset
// hyperparameters with their defaults.
func NewAdam(params []*graph.Node, config AdamConfig) *Adam {
	checkParams(params)
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas == [2]float64{} {
		config.Betas = [2]float64{0.9, 0.999}
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make([]float64, len(params)),
		v:      make([]float64, len(params)),
	}
}

// Step applies one update to every parameter.
func (a *Adam) Step() {
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, p := range a.params {
		g := p.Derivative
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / c1
		vHat := a.v[i] / c2
		p.Value -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// ZeroGrad resets parameter derivatives.
func (a *Adam) ZeroGrad() { zeroGrad(a.params) }

// LR returns the learning rate.
func (a *Adam) LR() float64 { return a.lr }

// StepCount returns the number of steps taken.
func (a *Adam) StepCount() int { return a.t }
