package forward

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/deriv-ml/deriv/internal/elem"
)

// Binary operations accept either another *Dual or a plain real
// (float64, float32, int) as the other operand. Package-level Add, Sub,
// Mul, Div and Pow additionally cover the scalar-on-the-left operand
// order, e.g. forward.Sub(2, x) for 2 - x.

// Add returns d + other.
func (d *Dual) Add(other any) *Dual {
	o := d.coerce(other, "+")
	der := make([]float64, len(d.der))
	floats.AddTo(der, d.der, o.der)
	return &Dual{val: d.val + o.val, der: der}
}

// Sub returns d - other.
func (d *Dual) Sub(other any) *Dual {
	o := d.coerce(other, "-")
	der := make([]float64, len(d.der))
	floats.SubTo(der, d.der, o.der)
	return &Dual{val: d.val - o.val, der: der}
}

// Mul returns d * other, with derivative d.val*o.der + o.val*d.der
// (product rule).
func (d *Dual) Mul(other any) *Dual {
	o := d.coerce(other, "*")
	der := make([]float64, len(d.der))
	for i := range der {
		der[i] = d.val*o.der[i] + o.val*d.der[i]
	}
	return &Dual{val: d.val * o.val, der: der}
}

// Div returns d / other, with derivative (o.val*d.der - d.val*o.der) /
// o.val^2 (quotient rule). Division by zero is a DomainError.
func (d *Dual) Div(other any) *Dual {
	o := d.coerce(other, "/")
	if o.val == 0 {
		panic(&elem.DomainError{Fn: "div", Value: o.val, Reason: "division by zero"})
	}
	der := make([]float64, len(d.der))
	for i := range der {
		der[i] = (o.val*d.der[i] - d.val*o.der[i]) / (o.val * o.val)
	}
	return &Dual{val: d.val / o.val, der: der}
}

// Neg returns -d.
func (d *Dual) Neg() *Dual {
	der := make([]float64, len(d.der))
	floats.ScaleTo(der, -1, d.der)
	return &Dual{val: -d.val, der: der}
}

// Pow returns d raised to the power other.
//
// With a plain-real exponent p the derivative is p*d^(p-1)*d'. A negative
// base requires an integer exponent and a zero base requires p >= 1; both
// violations are DomainErrors (the alternative is a complex or infinite
// derivative). With a *Dual exponent e the base must be positive, since
// differentiation goes through exp(e*log(d)).
func (d *Dual) Pow(other any) *Dual {
	if p, ok := scalarOf(other); ok {
		return d.powScalar(p)
	}
	e, ok := other.(*Dual)
	if !ok {
		panic(&elem.UnknownOperationError{Op: "**", Operand: other})
	}
	if len(e.der) != len(d.der) {
		panic(&ShapeError{Op: "**", Want: len(d.der), Got: len(e.der)})
	}
	return d.powDual(e)
}

func (d *Dual) powScalar(p float64) *Dual {
	if d.val < 0 && p != math.Trunc(p) {
		panic(&elem.DomainError{Fn: "pow", Value: d.val, Reason: "negative base requires an integer exponent"})
	}
	if d.val == 0 && p < 1 {
		panic(&elem.DomainError{Fn: "pow", Value: d.val, Reason: "zero base requires an exponent >= 1"})
	}
	val := math.Pow(d.val, p)
	scale := p * math.Pow(d.val, p-1)
	der := make([]float64, len(d.der))
	floats.ScaleTo(der, scale, d.der)
	return &Dual{val: val, der: der}
}

func (d *Dual) powDual(e *Dual) *Dual {
	if d.val <= 0 {
		panic(&elem.DomainError{Fn: "pow", Value: d.val, Reason: "base must be positive when the exponent carries derivatives"})
	}
	val := math.Pow(d.val, e.val)
	logBase := math.Log(d.val)
	der := make([]float64, len(d.der))
	for i := range der {
		der[i] = val * (e.der[i]*logBase + e.val*d.der[i]/d.val)
	}
	return &Dual{val: val, der: der}
}

// Add returns a + b where at least one operand is a *Dual.
func Add(a, b any) *Dual {
	if d, ok := a.(*Dual); ok {
		return d.Add(b)
	}
	if d, ok := b.(*Dual); ok {
		return d.Add(a)
	}
	panic(&elem.UnknownOperationError{Op: "+", Operand: a})
}

// Sub returns a - b where at least one operand is a *Dual.
func Sub(a, b any) *Dual {
	if d, ok := a.(*Dual); ok {
		return d.Sub(b)
	}
	if d, ok := b.(*Dual); ok {
		return d.coerce(a, "-").Sub(d)
	}
	panic(&elem.UnknownOperationError{Op: "-", Operand: a})
}

// Mul returns a * b where at least one operand is a *Dual.
func Mul(a, b any) *Dual {
	if d, ok := a.(*Dual); ok {
		return d.Mul(b)
	}
	if d, ok := b.(*Dual); ok {
		return d.Mul(a)
	}
	panic(&elem.UnknownOperationError{Op: "*", Operand: a})
}

// Div returns a / b where at least one operand is a *Dual.
func Div(a, b any) *Dual {
	if d, ok := a.(*Dual); ok {
		return d.Div(b)
	}
	if d, ok := b.(*Dual); ok {
		return d.coerce(a, "/").Div(d)
	}
	panic(&elem.UnknownOperationError{Op: "/", Operand: a})
}

// Pow returns a raised to the power b where at least one operand is a
// *Dual. A plain-real base raised to a *Dual exponent must be positive;
// the derivative is b^x * log(b) * x'.
func Pow(a, b any) *Dual {
	if d, ok := a.(*Dual); ok {
		return d.Pow(b)
	}
	e, ok := b.(*Dual)
	if !ok {
		panic(&elem.UnknownOperationError{Op: "**", Operand: a})
	}
	base, ok := scalarOf(a)
	if !ok {
		panic(&elem.UnknownOperationError{Op: "**", Operand: a})
	}
	if base <= 0 {
		panic(&elem.DomainError{Fn: "pow", Value: base, Reason: "base must be positive when the exponent carries derivatives"})
	}
	val := math.Pow(base, e.val)
	der := make([]float64, len(e.der))
	floats.ScaleTo(der, val*math.Log(base), e.der)
	return &Dual{val: val, der: der}
}

// Comparisons inspect primal values only. Two Duals with equal values but
// different derivative vectors compare equal; derivative state never
// participates and no comparison panics on mismatched derivative lengths.

// Equal reports whether the primal values are equal.
func (d *Dual) Equal(other any) bool { return d.val == primalOf(other, "==") }

// NotEqual reports whether the primal values differ.
func (d *Dual) NotEqual(other any) bool { return d.val != primalOf(other, "!=") }

// Less reports whether d's primal value is smaller.
func (d *Dual) Less(other any) bool { return d.val < primalOf(other, "<") }

// LessEqual reports whether d's primal value is smaller or equal.
func (d *Dual) LessEqual(other any) bool { return d.val <= primalOf(other, "<=") }

// Greater reports whether d's primal value is larger.
func (d *Dual) Greater(other any) bool { return d.val > primalOf(other, ">") }

// GreaterEqual reports whether d's primal value is larger or equal.
func (d *Dual) GreaterEqual(other any) bool { return d.val >= primalOf(other, ">=") }

func primalOf(other any, op string) float64 {
	if s, ok := scalarOf(other); ok {
		return s
	}
	if o, ok := other.(*Dual); ok {
		return o.val
	}
	panic(&elem.UnknownOperationError{Op: op, Operand: other})
}
