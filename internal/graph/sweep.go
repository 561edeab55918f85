package graph

import (
	"fmt"
	"math"
)

// Evaluate computes Value for n and every node below it, operands first.
// Leaves keep their current Value.
func (n *Node) Evaluate() {
	if n.kind.IsLeaf() {
		return
	}
	if n.kind == KindInvalid {
		panic("graph: Evaluate: invalid node")
	}
	for _, op := range n.Operands() {
		op.Evaluate()
	}
	n.Value = n.compute()
}

// Forwards computes Value and Derivative for n and every node below it, where
// Derivative is the tangent with respect to seed: the seed parameter
// contributes 1, every other parameter and every constant contributes 0.
//
// One sweep yields one partial derivative of the root. A full gradient over k
// parameters takes k sweeps; see ForwardGrad.
func (n *Node) Forwards(seed *Node) {
	switch n.kind {
	case KindConstant:
		n.Derivative = 0
		return
	case KindParameter:
		if n == seed {
			n.Derivative = 1
		} else {
			n.Derivative = 0
		}
		return
	case KindInvalid:
		panic("graph: Forwards: invalid node")
	}
	for _, op := range n.Operands() {
		op.Forwards(seed)
	}
	n.Value = n.compute()
	n.Derivative = n.tangent()
}

// Backwards distributes the adjoint resid (∂output/∂n) to the operands of n
// and recurses. Call it on the root with resid = 1 after Evaluate.
//
// Every visited node adds the adjoint it receives to Derivative, constants
// excepted. Derivatives are never reset here: a second call without ZeroGrad
// sums onto the first.
func (n *Node) Backwards(resid float64) {
	switch n.kind {
	case KindConstant:
		return
	case KindParameter:
		n.Derivative += resid
		return
	case KindInvalid:
		panic("graph: Backwards: invalid node")
	}
	n.Derivative += resid

	a, b := n.lhs, n.rhs
	switch n.kind {
	case KindAdd:
		a.Backwards(resid)
		b.Backwards(resid)
	case KindSub:
		a.Backwards(resid)
		b.Backwards(-resid)
	case KindMul:
		a.Backwards(resid * b.Value)
		b.Backwards(resid * a.Value)
	case KindDiv:
		a.Backwards(resid / b.Value)
		b.Backwards(-resid * a.Value / (b.Value * b.Value))
	case KindPow:
		a.Backwards(resid * b.Value * math.Pow(a.Value, b.Value-1))
		b.Backwards(resid * math.Pow(a.Value, b.Value) * math.Log(a.Value))
	default:
		a.Backwards(resid * n.localPartial())
	}
}

// compute applies the operation of n to the current operand values.
func (n *Node) compute() float64 {
	a := n.lhs.Value
	switch n.kind {
	case KindAdd:
		return a + n.rhs.Value
	case KindSub:
		return a - n.rhs.Value
	case KindMul:
		return a * n.rhs.Value
	case KindDiv:
		return a / n.rhs.Value
	case KindPow:
		return math.Pow(a, n.rhs.Value)
	case KindLog:
		return math.Log(a)
	case KindExp:
		return math.Exp(a)
	case KindSin:
		return math.Sin(a)
	case KindCos:
		return math.Cos(a)
	case KindTan:
		return math.Tan(a)
	case KindAsin:
		return math.Asin(a)
	case KindAcos:
		return math.Acos(a)
	case KindAtan:
		return math.Atan(a)
	default:
		panic(fmt.Sprintf("graph: compute: unexpected kind %s", n.kind))
	}
}

// tangent applies the chain rule to the operand values and derivatives.
// Operands must already hold the results of Forwards.
func (n *Node) tangent() float64 {
	a := n.lhs
	switch n.kind {
	case KindAdd:
		return a.Derivative + n.rhs.Derivative
	case KindSub:
		return a.Derivative - n.rhs.Derivative
	case KindMul:
		b := n.rhs
		return a.Derivative*b.Value + a.Value*b.Derivative
	case KindDiv:
		b := n.rhs
		return (a.Derivative*b.Value - a.Value*b.Derivative) / (b.Value * b.Value)
	case KindPow:
		// A constant exponent never reaches ln(a), so x^c is finite for x <= 0.
		b := n.rhs
		var d float64
		if a.Derivative != 0 {
			d = b.Value * math.Pow(a.Value, b.Value-1) * a.Derivative
		}
		if b.Derivative != 0 {
			d += n.Value * math.Log(a.Value) * b.Derivative
		}
		return d
	default:
		return a.Derivative * n.localPartial()
	}
}

// localPartial returns ∂n/∂operand for a unary node at the operand's value.
func (n *Node) localPartial() float64 {
	a := n.lhs.Value
	switch n.kind {
	case KindLog:
		return 1 / a
	case KindExp:
		return math.Exp(a)
	case KindSin:
		return math.Cos(a)
	case KindCos:
		return -math.Sin(a)
	case KindTan:
		c := math.Cos(a)
		return 1 / (c * c)
	case KindAsin:
		return 1 / math.Sqrt(1-a*a)
	case KindAcos:
		return -1 / math.Sqrt(1-a*a)
	case KindAtan:
		return 1 / (1 + a*a)
	default:
		panic(fmt.Sprintf("graph: localPartial: unexpected kind %s", n.kind))
	}
}
