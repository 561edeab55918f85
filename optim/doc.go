// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers for expression graph parameters.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Minimize: the zero-grad, evaluate, backwards, step loop
//
// # Basic Usage
//
//	x := graph.NamedParameter("x", 0)
//	loss := graph.Pow(graph.Sub(x, graph.Constant(3)), graph.Constant(2))
//
//	opt := optim.NewSGD(graph.Parameters(loss), optim.SGDConfig{LR: 0.1})
//	final := optim.Minimize(loss, opt, 200) // x.Value ≈ 3
//
// # Gradient Accumulation
//
// A reverse sweep adds to each parameter's Derivative. Call ZeroGrad before
// every sweep when driving the loop by hand; Minimize does it for you.
package optim
