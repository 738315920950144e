// Package forward implements forward-mode automatic differentiation over
// dual numbers: each value carries its primal scalar together with a
// derivative vector holding one directional derivative per independent
// variable. Every operation produces a new immutable Dual whose value and
// derivative vector are computed in the same step via the chain rule.
package forward

import (
	"fmt"

	"github.com/deriv-ml/deriv/internal/elem"
)

// Dual is a dual number: a primal value plus a derivative vector of fixed
// length. Duals are immutable; every operation allocates a new one.
type Dual struct {
	val float64
	der []float64
}

// New creates a Dual for a single independent variable, seeded with the
// unit derivative [1].
func New(val float64) *Dual {
	return &Dual{val: val, der: []float64{1}}
}

// NewSeeded creates a Dual with an explicit seed vector. The seed is
// copied, and its length fixes the number of independent variables for
// every expression this Dual participates in.
func NewSeeded(val float64, seed []float64) *Dual {
	der := make([]float64, len(seed))
	copy(der, seed)
	return &Dual{val: val, der: der}
}

// Constant creates a Dual representing a constant: its derivative vector
// of length ndim is all zeros, so it contributes no derivative to any
// expression it enters.
func Constant(val float64, ndim int) *Dual {
	return &Dual{val: val, der: make([]float64, ndim)}
}

// FromSlice creates one Dual per entry of vals, each with a derivative
// vector of length len(vals) seeded as the corresponding unit vector.
// Composing the results into an expression makes every variable's partial
// derivative independently recoverable from the result's Derivative.
//
//	xs := forward.FromSlice([]float64{2, 4})
//	// xs[0] = Dual(2, [1 0]), xs[1] = Dual(4, [0 1])
func FromSlice(vals []float64) []*Dual {
	duals := make([]*Dual, len(vals))
	for i, v := range vals {
		der := make([]float64, len(vals))
		der[i] = 1
		duals[i] = &Dual{val: v, der: der}
	}
	return duals
}

// Value returns the primal value.
func (d *Dual) Value() float64 {
	return d.val
}

// Derivative returns a copy of the derivative vector.
func (d *Dual) Derivative() []float64 {
	der := make([]float64, len(d.der))
	copy(der, d.der)
	return der
}

// NDim returns the length of the derivative vector, i.e. the number of
// independent variables in the enclosing expression.
func (d *Dual) NDim() int {
	return len(d.der)
}

func (d *Dual) String() string {
	return fmt.Sprintf("Dual(%v, %v)", d.val, d.der)
}

// coerce converts the other operand of a binary operation to a *Dual.
// Plain reals become constants with a matching derivative length. A *Dual
// with a mismatched derivative length panics with a ShapeError; any type
// outside the supported set panics with an UnknownOperationError.
func (d *Dual) coerce(other any, op string) *Dual {
	switch v := other.(type) {
	case *Dual:
		if len(v.der) != len(d.der) {
			panic(&ShapeError{Op: op, Want: len(d.der), Got: len(v.der)})
		}
		return v
	case float64:
		return Constant(v, len(d.der))
	case float32:
		return Constant(float64(v), len(d.der))
	case int:
		return Constant(float64(v), len(d.der))
	default:
		panic(&elem.UnknownOperationError{Op: op, Operand: other})
	}
}

// scalarOf extracts a plain real from the supported scalar operand types.
func scalarOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
