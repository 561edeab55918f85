package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adiff/internal/graph"
)

// nested builds
//
//	(x+y)·z + log(x·x^y) + exp(sin x + cos y + tan z) + asin(acos(atan(x+y+z))) + x^sin(y)
//
// sharing x, y and z across every term.
func nested(x, y, z *graph.Node) *graph.Node {
	return graph.Add(
		graph.Add(
			graph.Add(
				graph.Mul(graph.Add(x, y), z),
				graph.Log(graph.Mul(x, graph.Pow(x, y))),
			),
			graph.Exp(graph.Add(graph.Add(graph.Sin(x), graph.Cos(y)), graph.Tan(z))),
		),
		graph.Add(
			graph.Asin(graph.Acos(graph.Atan(graph.Add(graph.Add(x, y), z)))),
			graph.Pow(x, graph.Sin(y)),
		),
	)
}

func TestSumOfSquares(t *testing.T) {
	x := graph.NamedParameter("x", 0.5)
	y := graph.NamedParameter("y", 0.1)
	z := graph.NamedParameter("z", 0.6)
	two := graph.Constant(2)
	f := graph.Add(graph.Add(graph.Pow(x, two), graph.Pow(y, two)), graph.Pow(z, two))

	value, grad := graph.ValueAndGrad(f, x, y, z)
	assert.InDelta(t, 0.62, value, 1e-12)
	assert.InDeltaSlice(t, []float64{1.0, 0.2, 1.2}, grad, 1e-12)
	assert.InDeltaSlice(t, []float64{1.0, 0.2, 1.2}, graph.ForwardGrad(f, x, y, z), 1e-12)
}

func TestLogExp(t *testing.T) {
	for _, v := range []float64{-3, -0.5, 0, 0.25, 1, 7.5} {
		x := graph.Parameter(v)
		f := graph.Log(graph.Exp(x))

		grad := graph.Grad(f, x)
		assert.InDelta(t, v, f.Value, 1e-12)
		assert.InDelta(t, 1.0, grad[0], 1e-12)

		f.Forwards(x)
		assert.InDelta(t, 1.0, f.Derivative, 1e-12)
	}
}

func TestForwardReverseAgreement(t *testing.T) {
	points := [][3]float64{
		{0.5, 0.1, 0.6},
		{0.9, 0.2, 0.1},
		{0.3, 0.4, 0.2},
	}
	for _, pt := range points {
		x := graph.Parameter(pt[0])
		y := graph.Parameter(pt[1])
		z := graph.Parameter(pt[2])
		f := nested(x, y, z)

		reverse := graph.Grad(f, x, y, z)
		forward := graph.ForwardGrad(f, x, y, z)
		assertSliceClose(t, reverse, forward, "at %v", pt)
		assertSliceClose(t, numericGrad(f, x, y, z), reverse, "at %v", pt)
	}
}

func TestGradIdempotent(t *testing.T) {
	x := graph.Parameter(0.5)
	y := graph.Parameter(0.1)
	z := graph.Parameter(0.6)
	f := nested(x, y, z)

	first := graph.Grad(f, x, y, z)
	second := graph.Grad(f, x, y, z)
	assert.Equal(t, first, second)
}

func TestGradUnrelatedParameter(t *testing.T) {
	x := graph.Parameter(2)
	other := graph.Parameter(9)
	other.Derivative = 123

	f := graph.Mul(x, x)
	assert.Equal(t, []float64{4, 0}, graph.Grad(f, x, other))
	assert.Equal(t, []float64{4, 0}, graph.ForwardGrad(f, x, other))
	assert.Empty(t, graph.Grad(f))
}

func TestParameters(t *testing.T) {
	x := graph.NamedParameter("x", 1)
	y := graph.NamedParameter("y", 2)
	f := graph.Add(graph.Mul(y, x), graph.Sub(x, graph.Constant(3)))

	params := graph.Parameters(f)
	require.Len(t, params, 2)
	assert.Same(t, y, params[0])
	assert.Same(t, x, params[1])

	assert.Equal(t, []*graph.Node{x}, graph.Parameters(x))
	assert.Empty(t, graph.Parameters(graph.Constant(1)))
}

func TestZeroGrad(t *testing.T) {
	x := graph.Parameter(1)
	s := graph.Sin(x)
	f := graph.Add(s, graph.Cos(s))

	f.Evaluate()
	f.Backwards(1)
	require.NotZero(t, x.Derivative)
	require.NotZero(t, s.Derivative)

	graph.ZeroGrad(f)
	for _, n := range []*graph.Node{x, s, f} {
		assert.Zero(t, n.Derivative)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		node  *graph.Node
		kind  graph.Kind
		name  string
		arity int
	}{
		{graph.Constant(1), graph.KindConstant, "constant", 0},
		{graph.Parameter(1), graph.KindParameter, "parameter", 0},
		{graph.Sub(graph.Constant(1), graph.Constant(2)), graph.KindSub, "sub", 2},
		{graph.Div(graph.Constant(1), graph.Constant(2)), graph.KindDiv, "div", 2},
		{graph.Atan(graph.Constant(1)), graph.KindAtan, "atan", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.node.Kind())
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.arity, tt.kind.Arity())
		assert.Len(t, tt.node.Operands(), tt.arity)
		assert.Equal(t, tt.arity == 0, tt.kind.IsLeaf())
	}

	assert.Equal(t, "invalid", graph.KindInvalid.String())
	assert.Equal(t, -1, graph.KindInvalid.Arity())
	assert.Equal(t, "unknown", graph.Kind(200).String())
}

func TestString(t *testing.T) {
	x := graph.NamedParameter("x", 1)
	y := graph.NamedParameter("y", 2)
	f := graph.Add(graph.Mul(x, y), graph.Sin(graph.Pow(graph.Constant(2.5), graph.Parameter(3))))

	assert.Equal(t, "((x * y) + sin((2.5 ^ [3])))", f.String())
	assert.Equal(t, "x", x.Name())
	assert.Equal(t, "", graph.Parameter(0).Name())
}
