package graph

// walk calls visit once for every distinct node reachable from root, in
// depth-first pre-order, left operand first.
func walk(root *Node, visit func(*Node)) {
	seen := make(map[*Node]struct{})
	var rec func(*Node)
	rec = func(n *Node) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		visit(n)
		for _, op := range n.Operands() {
			rec(op)
		}
	}
	rec(root)
}

// Parameters returns the distinct parameters reachable from root in the order
// they are first visited.
func Parameters(root *Node) []*Node {
	var params []*Node
	walk(root, func(n *Node) {
		if n.kind == KindParameter {
			params = append(params, n)
		}
	})
	return params
}

// ZeroGrad resets Derivative to zero on every node reachable from root.
// Call it before each independent Backwards sweep.
func ZeroGrad(root *Node) {
	walk(root, func(n *Node) {
		n.Derivative = 0
	})
}

// Grad returns the gradient of root with respect to params using one reverse
// sweep. It resets derivatives, evaluates the graph and back-propagates a unit
// adjoint, so repeated calls return the same result.
//
// A parameter that does not appear in the graph has a zero partial.
func Grad(root *Node, params ...*Node) []float64 {
	_, grad := ValueAndGrad(root, params...)
	return grad
}

// ValueAndGrad is like Grad but also returns the value of root.
func ValueAndGrad(root *Node, params ...*Node) (float64, []float64) {
	ZeroGrad(root)
	for _, p := range params {
		p.Derivative = 0
	}

	root.Evaluate()
	root.Backwards(1)

	grad := make([]float64, len(params))
	for i, p := range params {
		grad[i] = p.Derivative
	}
	return root.Value, grad
}

// ForwardGrad returns the gradient of root with respect to params using one
// Forwards sweep per parameter.
func ForwardGrad(root *Node, params ...*Node) []float64 {
	grad := make([]float64, len(params))
	for i, p := range params {
		root.Forwards(p)
		grad[i] = root.Derivative
	}
	return grad
}
