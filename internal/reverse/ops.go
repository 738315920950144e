package reverse

import (
	"math"

	"github.com/deriv-ml/deriv/internal/elem"
)

// Binary operations accept either another *Node or a plain real (float64,
// float32, int) as the other operand; plain reals become constant nodes,
// which record no edges. Package-level Add, Sub, Mul, Div and Pow cover
// the scalar-on-the-left operand order, e.g. reverse.Div(2, x) for 2 / x.

// coerce converts the other operand of a binary operation to a *Node.
func (n *Node) coerce(other any, op string) *Node {
	switch v := other.(type) {
	case *Node:
		return v
	case float64:
		return Constant(v)
	case float32:
		return Constant(float64(v))
	case int:
		return Constant(float64(v))
	default:
		panic(&elem.UnknownOperationError{Op: op, Operand: other})
	}
}

// Add returns n + other, recording local partials 1 and 1.
func (n *Node) Add(other any) *Node {
	o := n.coerce(other, "+")
	child := &Node{val: n.val + o.val}
	n.addUse(1, child)
	o.addUse(1, child)
	return child
}

// Sub returns n - other, recording local partials 1 and -1.
func (n *Node) Sub(other any) *Node {
	o := n.coerce(other, "-")
	child := &Node{val: n.val - o.val}
	n.addUse(1, child)
	o.addUse(-1, child)
	return child
}

// Mul returns n * other, recording each operand's local partial as the
// other operand's value (product rule).
func (n *Node) Mul(other any) *Node {
	o := n.coerce(other, "*")
	child := &Node{val: n.val * o.val}
	n.addUse(o.val, child)
	o.addUse(n.val, child)
	return child
}

// Div returns n / other, recording local partials 1/o and -n/o^2
// (quotient rule). Division by zero is a DomainError.
func (n *Node) Div(other any) *Node {
	o := n.coerce(other, "/")
	if o.val == 0 {
		panic(&elem.DomainError{Fn: "div", Value: o.val, Reason: "division by zero"})
	}
	child := &Node{val: n.val / o.val}
	n.addUse(1/o.val, child)
	o.addUse(-n.val/(o.val*o.val), child)
	return child
}

// Neg returns -n.
func (n *Node) Neg() *Node {
	child := &Node{val: -n.val}
	n.addUse(-1, child)
	return child
}

// Pow returns n raised to the power other. The domain rules match forward
// mode: a negative base requires an integer plain-real exponent, a zero
// base requires a plain-real exponent >= 1, and a *Node exponent requires
// a positive base.
func (n *Node) Pow(other any) *Node {
	if p, ok := scalarOf(other); ok {
		return n.powScalar(p)
	}
	e, ok := other.(*Node)
	if !ok {
		panic(&elem.UnknownOperationError{Op: "**", Operand: other})
	}
	return n.powNode(e)
}

func (n *Node) powScalar(p float64) *Node {
	if n.val < 0 && p != math.Trunc(p) {
		panic(&elem.DomainError{Fn: "pow", Value: n.val, Reason: "negative base requires an integer exponent"})
	}
	if n.val == 0 && p < 1 {
		panic(&elem.DomainError{Fn: "pow", Value: n.val, Reason: "zero base requires an exponent >= 1"})
	}
	child := &Node{val: math.Pow(n.val, p)}
	n.addUse(p*math.Pow(n.val, p-1), child)
	return child
}

func (n *Node) powNode(e *Node) *Node {
	if n.val <= 0 {
		panic(&elem.DomainError{Fn: "pow", Value: n.val, Reason: "base must be positive when the exponent carries derivatives"})
	}
	val := math.Pow(n.val, e.val)
	child := &Node{val: val}
	n.addUse(val*e.val/n.val, child)
	e.addUse(val*math.Log(n.val), child)
	return child
}

// Add returns a + b where at least one operand is a *Node.
func Add(a, b any) *Node {
	if n, ok := a.(*Node); ok {
		return n.Add(b)
	}
	if n, ok := b.(*Node); ok {
		return n.Add(a)
	}
	panic(&elem.UnknownOperationError{Op: "+", Operand: a})
}

// Sub returns a - b where at least one operand is a *Node.
func Sub(a, b any) *Node {
	if n, ok := a.(*Node); ok {
		return n.Sub(b)
	}
	if n, ok := b.(*Node); ok {
		return n.coerce(a, "-").Sub(n)
	}
	panic(&elem.UnknownOperationError{Op: "-", Operand: a})
}

// Mul returns a * b where at least one operand is a *Node.
func Mul(a, b any) *Node {
	if n, ok := a.(*Node); ok {
		return n.Mul(b)
	}
	if n, ok := b.(*Node); ok {
		return n.Mul(a)
	}
	panic(&elem.UnknownOperationError{Op: "*", Operand: a})
}

// Div returns a / b where at least one operand is a *Node.
func Div(a, b any) *Node {
	if n, ok := a.(*Node); ok {
		return n.Div(b)
	}
	if n, ok := b.(*Node); ok {
		return n.coerce(a, "/").Div(n)
	}
	panic(&elem.UnknownOperationError{Op: "/", Operand: a})
}

// Pow returns a raised to the power b where at least one operand is a
// *Node. A plain-real base raised to a *Node exponent must be positive;
// the recorded local partial is b^x * log(b).
func Pow(a, b any) *Node {
	if n, ok := a.(*Node); ok {
		return n.Pow(b)
	}
	e, ok := b.(*Node)
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
	child := &Node{val: val}
	e.addUse(val*math.Log(base), child)
	return child
}

// Comparisons inspect primal values only, exactly as in forward mode: two
// Nodes with equal values but different gradient state compare equal, and
// no comparison panics on gradient state.

// Equal reports whether the primal values are equal.
func (n *Node) Equal(other any) bool { return n.val == primalOf(other, "==") }

// NotEqual reports whether the primal values differ.
func (n *Node) NotEqual(other any) bool { return n.val != primalOf(other, "!=") }

// Less reports whether n's primal value is smaller.
func (n *Node) Less(other any) bool { return n.val < primalOf(other, "<") }

// LessEqual reports whether n's primal value is smaller or equal.
func (n *Node) LessEqual(other any) bool { return n.val <= primalOf(other, "<=") }

// Greater reports whether n's primal value is larger.
func (n *Node) Greater(other any) bool { return n.val > primalOf(other, ">") }

// GreaterEqual reports whether n's primal value is larger or equal.
func (n *Node) GreaterEqual(other any) bool { return n.val >= primalOf(other, ">=") }

func scalarOf(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	}
	return 0, false
}

func primalOf(other any, op string) float64 {
	if s, ok := scalarOf(other); ok {
		return s
	}
	if o, ok := other.(*Node); ok {
		return o.val
	}
	panic(&elem.UnknownOperationError{Op: op, Operand: other})
}
