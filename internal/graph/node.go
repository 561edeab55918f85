// Package graph implements automatic differentiation over expression graphs.
//
// An expression is assembled bottom-up from leaves (Constant, Parameter) and
// operator nodes (Add, Sub, Mul, Div, Pow, Log, Exp, Sin, Cos, Tan, Asin, Acos,
// Atan). Passing the same *Node to several parents shares the sub-expression,
// so a graph is in general a DAG rather than a tree.
//
// Every node supports three sweeps:
//   - Evaluate: post-order value computation.
//   - Forwards: post-order value and tangent computation seeded at one parameter.
//   - Backwards: pre-order adjoint distribution (reverse mode).
//
// Value and Derivative on each node are written as a side effect of the sweeps.
// Backwards accumulates into Derivative rather than assigning it, so shared
// nodes collect the sum of the adjoints arriving along every path. Callers
// must reset derivatives with ZeroGrad between independent reverse sweeps, or
// use Grad which does so.
//
// Sweeps are plain recursion without memoisation: a shared node is visited
// once per path from the root, so a DAG whose paths multiply (for example
// repeated squaring x1 = x0*x0, x2 = x1*x1, ...) costs time exponential in
// its depth.
//
// Numeric domain violations propagate as IEEE-754 NaN/±Inf. Building a node
// with a nil operand panics.
//
// Graphs are not safe for concurrent traversal: sweeps mutate node state.
//
// Example:
//
//	x := graph.Parameter(3)
//	y := graph.Parameter(4)
//	f := graph.Mul(x, y)
//
//	f.Evaluate()
//	f.Backwards(1)
//	fmt.Println(x.Derivative, y.Derivative) // 4 3
package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a vertex of an expression graph.
type Node struct {
	// Value is the result of the last Evaluate or Forwards sweep.
	Value float64

	// Derivative is the tangent written by the last Forwards sweep, or the
	// adjoint accumulated by Backwards sweeps since the last reset.
	Derivative float64

	kind Kind
	lhs  *Node
	rhs  *Node
	name string
}

// Constant returns a leaf holding a fixed value. Its derivative is always zero.
func Constant(v float64) *Node {
	return &Node{kind: KindConstant, Value: v}
}

// Parameter returns an independent variable initialised to v.
func Parameter(v float64) *Node {
	return &Node{kind: KindParameter, Value: v}
}

// NamedParameter returns an independent variable with a display name.
func NamedParameter(name string, v float64) *Node {
	return &Node{kind: KindParameter, Value: v, name: name}
}

// Add returns a + b.
//
// Backward: ∂/∂a = 1, ∂/∂b = 1.
func Add(a, b *Node) *Node { return binary(KindAdd, a, b) }

// Sub returns a - b.
//
// Backward: ∂/∂a = 1, ∂/∂b = -1.
func Sub(a, b *Node) *Node { return binary(KindSub, a, b) }

// Mul returns a * b.
//
// Backward: ∂/∂a = b, ∂/∂b = a.
func Mul(a, b *Node) *Node { return binary(KindMul, a, b) }

// Div returns a / b.
//
// Backward: ∂/∂a = 1/b, ∂/∂b = -a/b².
func Div(a, b *Node) *Node { return binary(KindDiv, a, b) }

// Pow returns a ** b.
//
// Backward: ∂/∂a = b·a^(b-1), ∂/∂b = a^b·ln(a).
// The exponent's partial is NaN for a < 0 and for a = 0; it is discarded when
// the exponent is a Constant.
func Pow(a, b *Node) *Node { return binary(KindPow, a, b) }

// Log returns ln(a).
//
// Backward: ∂/∂a = 1/a.
func Log(a *Node) *Node { return unary(KindLog, a) }

// Exp returns e**a.
//
// Backward: ∂/∂a = e^a.
func Exp(a *Node) *Node { return unary(KindExp, a) }

// Sin returns sin(a).
//
// Backward: ∂/∂a = cos(a).
func Sin(a *Node) *Node { return unary(KindSin, a) }

// Cos returns cos(a).
//
// Backward: ∂/∂a = -sin(a).
func Cos(a *Node) *Node { return unary(KindCos, a) }

// Tan returns tan(a).
//
// Backward: ∂/∂a = 1/cos²(a).
func Tan(a *Node) *Node { return unary(KindTan, a) }

// Asin returns asin(a).
//
// Backward: ∂/∂a = 1/√(1-a²).
func Asin(a *Node) *Node { return unary(KindAsin, a) }

// Acos returns acos(a).
//
// Backward: ∂/∂a = -1/√(1-a²).
func Acos(a *Node) *Node { return unary(KindAcos, a) }

// Atan returns atan(a).
//
// Backward: ∂/∂a = 1/(1+a²).
func Atan(a *Node) *Node { return unary(KindAtan, a) }

func binary(k Kind, a, b *Node) *Node {
	if a == nil || b == nil {
		panic(fmt.Sprintf("graph: %s: nil operand", k))
	}
	return &Node{kind: k, lhs: a, rhs: b}
}

func unary(k Kind, a *Node) *Node {
	if a == nil {
		panic(fmt.Sprintf("graph: %s: nil operand", k))
	}
	return &Node{kind: k, lhs: a}
}

// Kind returns the operation n performs.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the display name of a parameter, or "" if none was given.
func (n *Node) Name() string { return n.name }

// Operands returns the operands of n in order: none for a leaf, one for a
// unary node, two for a binary node.
func (n *Node) Operands() []*Node {
	switch n.kind.Arity() {
	case 1:
		return []*Node{n.lhs}
	case 2:
		return []*Node{n.lhs, n.rhs}
	default:
		return nil
	}
}

// String renders the expression rooted at n in infix notation.
// Unnamed parameters render as their current value in brackets.
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	switch n.kind.Arity() {
	case 0:
		if n.name != "" {
			sb.WriteString(n.name)
			return
		}
		if n.kind == KindParameter {
			sb.WriteByte('[')
			sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
			sb.WriteByte(']')
			return
		}
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case 1:
		sb.WriteString(n.kind.String())
		sb.WriteByte('(')
		n.lhs.format(sb)
		sb.WriteByte(')')
	case 2:
		sb.WriteByte('(')
		n.lhs.format(sb)
		sb.WriteString(" " + n.kind.symbol() + " ")
		n.rhs.format(sb)
		sb.WriteByte(')')
	default:
		sb.WriteString("<invalid>")
	}
}
