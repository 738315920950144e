package forward_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/deriv-ml/deriv/internal/forward"
)

func assertDual(t *testing.T, d *forward.Dual, val float64, der []float64) {
	t.Helper()
	assert.InDelta(t, val, d.Value(), 1e-10)
	require.Equal(t, len(der), d.NDim())
	assert.True(t, floats.EqualApprox(der, d.Derivative(), 1e-10),
		"derivative = %v, want %v", d.Derivative(), der)
}

func TestAdd(t *testing.T) {
	assertDual(t, forward.New(42).Add(5), 47, []float64{1})
	assertDual(t, forward.New(42).Add(forward.New(1)), 43, []float64{2})
	assertDual(t, forward.NewSeeded(42, []float64{1, 2}).Add(forward.NewSeeded(1, []float64{3, 4})), 43, []float64{4, 6})
	// Scalar on the left.
	assertDual(t, forward.Add(1.2, forward.New(42)), 43.2, []float64{1})
}

func TestSub_BothOperandOrders(t *testing.T) {
	assertDual(t, forward.New(42).Sub(5), 37, []float64{1})
	assertDual(t, forward.New(42).Sub(forward.New(1)), 41, []float64{0})
	assertDual(t, forward.NewSeeded(42, []float64{1, 2}).Sub(forward.NewSeeded(1, []float64{3, 4})), 41, []float64{-2, -2})

	// 1.2 - x negates the derivative; it is not the mirror image of x - 1.2.
	assertDual(t, forward.Sub(1.2, forward.New(42)), -40.8, []float64{-1})
	assertDual(t, forward.Sub(-3.6, forward.NewSeeded(42, []float64{1, 2})), -45.6, []float64{-1, -2})
}

func TestMul(t *testing.T) {
	assertDual(t, forward.New(42).Mul(5), 210, []float64{5})
	assertDual(t, forward.New(5.6).Mul(forward.New(1)), 5.6, []float64{6.6})
	assertDual(t, forward.NewSeeded(-9, []float64{1, 2}).Mul(forward.NewSeeded(4, []float64{2, -9})), -36, []float64{-14, 89})
	assertDual(t, forward.Mul(1.2, forward.New(42)), 50.4, []float64{1.2})
}

func TestDiv_BothOperandOrders(t *testing.T) {
	assertDual(t, forward.New(42).Div(5), 8.4, []float64{0.2})
	assertDual(t, forward.New(4).Div(forward.New(5)), 0.8, []float64{0.04})

	// 2 / x, derivative -2/x^2.
	assertDual(t, forward.Div(2, forward.New(4)), 0.5, []float64{-0.125})
	assertDual(t, forward.Div(2, forward.NewSeeded(4, []float64{1, 2})), 0.5, []float64{-0.125, -0.25})
}

func TestDiv_ByZero(t *testing.T) {
	assert.PanicsWithError(t, "div: division by zero (x = 0)", func() {
		forward.New(1).Div(0.0)
	})
	assert.PanicsWithError(t, "div: division by zero (x = 0)", func() {
		forward.Div(2, forward.New(0))
	})
}

func TestNeg(t *testing.T) {
	assertDual(t, forward.New(42).Neg(), -42, []float64{-1})
	assertDual(t, forward.NewSeeded(42, []float64{1, 2}).Neg(), -42, []float64{-1, -2})
}

func TestPow_ScalarExponent(t *testing.T) {
	assertDual(t, forward.New(2).Pow(5), 32, []float64{80})
	// Negative base is fine with an integer exponent.
	assertDual(t, forward.New(-2).Pow(2), 4, []float64{-4})
}

func TestPow_DualExponent(t *testing.T) {
	// d(x^e) = x^e * (e'*log(x) + e*x'/x)
	x := forward.New(2)
	e := forward.NewSeeded(3, []float64{2})
	assertDual(t, x.Pow(e), 8, []float64{8 * (2*math.Log(2) + 3.0/2)})
}

func TestPow_ScalarBase(t *testing.T) {
	// 5 ** x, derivative 5^x * log(5).
	got := forward.Pow(5, forward.New(2))
	assertDual(t, got, 25, []float64{25 * math.Log(5)})
}

func TestPow_DomainErrors(t *testing.T) {
	assert.PanicsWithError(t, "pow: negative base requires an integer exponent (x = -1)", func() {
		forward.New(-1).Pow(1.2)
	})
	assert.PanicsWithError(t, "pow: zero base requires an exponent >= 1 (x = 0)", func() {
		forward.New(0).Pow(-2)
	})
	assert.PanicsWithError(t, "pow: base must be positive when the exponent carries derivatives (x = 0)", func() {
		forward.New(0).Pow(forward.New(1))
	})
	assert.PanicsWithError(t, "pow: base must be positive when the exponent carries derivatives (x = -1)", func() {
		forward.Pow(-1, forward.New(2))
	})
}

func TestBinaryOps_ShapeMismatchPanics(t *testing.T) {
	a := forward.New(42)
	b := forward.NewSeeded(10, []float64{0, 1})
	assert.PanicsWithError(t, `derivative length mismatch for "+": 1 vs 2`, func() {
		a.Add(b)
	})
	assert.PanicsWithError(t, `derivative length mismatch for "**": 1 vs 2`, func() {
		a.Pow(b)
	})
}

func TestBinaryOps_UnknownOperandPanics(t *testing.T) {
	x := forward.New(1)
	assert.PanicsWithError(t, `unsupported operand type string for "+"`, func() {
		x.Add("autodiff")
	})
	assert.PanicsWithError(t, `unsupported operand type bool for "**"`, func() {
		forward.Pow(true, 2)
	})
}

func TestOps_AcceptIntAndFloat32(t *testing.T) {
	assertDual(t, forward.New(2).Add(3), 5, []float64{1})
	assertDual(t, forward.New(2).Mul(float32(2)), 4, []float64{2})
}

// Multivariate independence: x, y = [2, 4], f = 7*x^3 + 3*y.
func TestMultivariate_Independence(t *testing.T) {
	vars := forward.FromSlice([]float64{2, 4})
	x, y := vars[0], vars[1]

	f := forward.Mul(7, x.Pow(3)).Add(y.Mul(3))

	assertDual(t, f, 68, []float64{84, 3})
}

// Vector-valued output: two functions evaluated from the same leaves each
// carry an independent Jacobian row.
func TestVectorOutput_Consistency(t *testing.T) {
	vars := forward.FromSlice([]float64{2, 4, 6})
	x, y, z := vars[0], vars[1], vars[2]

	f1 := forward.Mul(7, x.Pow(3)).Add(y.Mul(3))
	f2 := y.Div(x).Add(z.Pow(2))

	assertDual(t, f1, 68, []float64{84, 3, 0})
	assertDual(t, f2, 38, []float64{-1, 0.5, 12})
}

// Immutability: using a Dual as an operand never changes it.
func TestOps_OperandsUnchanged(t *testing.T) {
	vars := forward.FromSlice([]float64{2, 4})
	x, y := vars[0], vars[1]

	x.Mul(y).Add(x.Pow(3)).Sub(y)

	assert.Equal(t, 2.0, x.Value())
	assert.Equal(t, []float64{1, 0}, x.Derivative())
	assert.Equal(t, 4.0, y.Value())
	assert.Equal(t, []float64{0, 1}, y.Derivative())
}
