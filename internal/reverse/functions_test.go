package reverse_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deriv-ml/deriv/internal/reverse"
)

func TestSin(t *testing.T) {
	x := reverse.New(math.Pi / 2)
	f := reverse.Sin(x)
	assert.InDelta(t, 1, f.Value(), 1e-12)
	assert.InDelta(t, math.Cos(math.Pi/2), x.Grad(), 1e-12)
}

func TestCos(t *testing.T) {
	x := reverse.New(math.Pi)
	f := reverse.Cos(x)
	assert.InDelta(t, -1, f.Value(), 1e-12)
	assert.InDelta(t, -math.Sin(math.Pi), x.Grad(), 1e-12)
}

func TestTan(t *testing.T) {
	x := reverse.New(math.Pi / 4)
	f := reverse.Tan(x)
	assert.InDelta(t, 1, f.Value(), 1e-12)
	assert.InDelta(t, 2, x.Grad(), 1e-12)
}

func TestTan_PoleIsDomainError(t *testing.T) {
	assert.PanicsWithError(t,
		fmt.Sprintf("tan: derivative is undefined at odd multiples of pi/2 (x = %v)", math.Pi/2),
		func() { reverse.Tan(reverse.New(math.Pi / 2)) })
}

func TestHyperbolics(t *testing.T) {
	x := reverse.New(2)
	f := reverse.Sinh(x)
	assert.InDelta(t, math.Sinh(2), f.Value(), 1e-12)
	assert.InDelta(t, math.Cosh(2), x.Grad(), 1e-12)

	y := reverse.New(2)
	g := reverse.Cosh(y)
	assert.InDelta(t, math.Cosh(2), g.Value(), 1e-12)
	assert.InDelta(t, math.Sinh(2), y.Grad(), 1e-12)

	z := reverse.New(1)
	h := reverse.Tanh(z)
	th := math.Tanh(1)
	assert.InDelta(t, th, h.Value(), 1e-12)
	assert.InDelta(t, 1-th*th, z.Grad(), 1e-12)
}

func TestInverseTrig(t *testing.T) {
	x := reverse.New(0.5)
	f := reverse.Asin(x)
	assert.InDelta(t, math.Asin(0.5), f.Value(), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(0.75), x.Grad(), 1e-12)

	y := reverse.New(0.5)
	g := reverse.Acos(y)
	assert.InDelta(t, math.Acos(0.5), g.Value(), 1e-12)
	assert.InDelta(t, -1/math.Sqrt(0.75), y.Grad(), 1e-12)

	z := reverse.New(1)
	h := reverse.Atan(z)
	assert.InDelta(t, math.Pi/4, h.Value(), 1e-12)
	assert.InDelta(t, 0.5, z.Grad(), 1e-12)
}

func TestAsinAcos_DomainErrors(t *testing.T) {
	assert.Panics(t, func() { reverse.Asin(reverse.New(1)) })
	assert.Panics(t, func() { reverse.Acos(reverse.New(-1.5)) })
}

func TestExp(t *testing.T) {
	x := reverse.New(1)
	f := reverse.Exp(x)
	assert.InDelta(t, math.E, f.Value(), 1e-12)
	assert.InDelta(t, math.E, x.Grad(), 1e-12)
}

func TestLog(t *testing.T) {
	x := reverse.New(2)
	f := reverse.Log(x)
	assert.InDelta(t, math.Log(2), f.Value(), 1e-12)
	assert.InDelta(t, 0.5, x.Grad(), 1e-12)
}

func TestLog_DomainError(t *testing.T) {
	assert.PanicsWithError(t, "log: undefined for x <= 0 (x = 0)", func() {
		reverse.Log(reverse.New(0))
	})
}

func TestLogBase(t *testing.T) {
	x := reverse.New(2)
	f := reverse.LogBase(x, 2)
	assert.InDelta(t, 1, f.Value(), 1e-12)
	assert.InDelta(t, 1/(2*math.Log(2)), x.Grad(), 1e-12)
}

func TestLogBase_NonPositiveBase(t *testing.T) {
	assert.PanicsWithError(t, "log: base must be positive (x = -3)", func() {
		reverse.LogBase(reverse.New(1), -3)
	})
}

func TestSqrt(t *testing.T) {
	x := reverse.New(4)
	f := reverse.Sqrt(x)
	assert.InDelta(t, 2, f.Value(), 1e-12)
	assert.InDelta(t, 0.25, x.Grad(), 1e-12)
}

func TestSqrt_DomainError(t *testing.T) {
	assert.PanicsWithError(t, "sqrt: derivative is undefined for x <= 0 (x = -1)", func() {
		reverse.Sqrt(reverse.New(-1))
	})
}

func TestLogistic(t *testing.T) {
	x := reverse.New(3)
	f := reverse.Logistic(x)
	s := 1 / (1 + math.Exp(-3))
	assert.InDelta(t, s, f.Value(), 1e-12)
	assert.InDelta(t, s*(1-s), x.Grad(), 1e-12)
}

// Chain of elementary functions and operators: f = logistic(sin(x) + x^2).
func TestComposition_ChainRule(t *testing.T) {
	const v = 0.8
	x := reverse.New(v)
	f := reverse.Logistic(reverse.Sin(x).Add(x.Pow(2)))

	inner := math.Sin(v) + v*v
	s := 1 / (1 + math.Exp(-inner))
	assert.InDelta(t, s, f.Value(), 1e-12)
	assert.InDelta(t, s*(1-s)*(math.Cos(v)+2*v), x.Grad(), 1e-12)
}

// Cross-check a handful of reverse-mode gradients against central finite
// differences of the same scalar function.
func TestGrad_MatchesFiniteDifference(t *testing.T) {
	cases := []struct {
		name string
		expr func(x *reverse.Node) *reverse.Node
		raw  func(x float64) float64
		at   float64
	}{
		{
			"exp(sin(x))",
			func(x *reverse.Node) *reverse.Node { return reverse.Exp(reverse.Sin(x)) },
			func(x float64) float64 { return math.Exp(math.Sin(x)) },
			1.1,
		},
		{
			"x*log(x) + sqrt(x)",
			func(x *reverse.Node) *reverse.Node { return x.Mul(reverse.Log(x)).Add(reverse.Sqrt(x)) },
			func(x float64) float64 { return x*math.Log(x) + math.Sqrt(x) },
			2.5,
		},
		{
			"tanh(x)/x",
			func(x *reverse.Node) *reverse.Node { return reverse.Tanh(x).Div(x) },
			func(x float64) float64 { return math.Tanh(x) / x },
			0.9,
		},
	}

	const epsilon = 1e-6
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := reverse.New(tc.at)
			f := tc.expr(x)
			assert.InDelta(t, tc.raw(tc.at), f.Value(), 1e-12)

			numerical := (tc.raw(tc.at+epsilon) - tc.raw(tc.at-epsilon)) / (2 * epsilon)
			assert.InDelta(t, numerical, x.Grad(), 1e-4)
		})
	}
}
