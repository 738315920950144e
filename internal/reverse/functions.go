package reverse

import (
	"math"

	"github.com/deriv-ml/deriv/internal/elem"
)

// apply evaluates one elementary function on a Node: the result node holds
// f(x) and the recorded edge holds the local partial f'(x). Propagation of
// that partial is deferred to the gradient pass. Domain violations panic
// with a DomainError before anything is evaluated.
func apply(f elem.Func, x *Node) *Node {
	if f.Check != nil {
		if err := f.Check(x.val); err != nil {
			panic(err)
		}
	}
	child := &Node{val: f.Eval(x.val)}
	x.addUse(f.Deriv(x.val), child)
	return child
}

// Sin returns the sine of x.
func Sin(x *Node) *Node { return apply(elem.Sin, x) }

// Cos returns the cosine of x.
func Cos(x *Node) *Node { return apply(elem.Cos, x) }

// Tan returns the tangent of x. At odd multiples of pi/2 the derivative is
// undefined and Tan panics with a DomainError.
func Tan(x *Node) *Node { return apply(elem.Tan, x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x *Node) *Node { return apply(elem.Sinh, x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x *Node) *Node { return apply(elem.Cosh, x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x *Node) *Node { return apply(elem.Tanh, x) }

// Asin returns the inverse sine of x, defined for |x| < 1.
func Asin(x *Node) *Node { return apply(elem.Asin, x) }

// Acos returns the inverse cosine of x, defined for |x| < 1.
func Acos(x *Node) *Node { return apply(elem.Acos, x) }

// Atan returns the inverse tangent of x.
func Atan(x *Node) *Node { return apply(elem.Atan, x) }

// Exp returns e raised to x.
func Exp(x *Node) *Node { return apply(elem.Exp, x) }

// Log returns the natural logarithm of x, defined for x > 0.
func Log(x *Node) *Node { return apply(elem.Log, x) }

// LogBase returns the logarithm of x in the given base. The base must be
// positive and x must be positive.
func LogBase(x *Node, base float64) *Node {
	if err := elem.CheckLogBase(base); err != nil {
		panic(err)
	}
	if err := elem.Log.Check(x.val); err != nil {
		panic(err)
	}
	logBase := math.Log(base)
	child := &Node{val: math.Log(x.val) / logBase}
	x.addUse(1/(x.val*logBase), child)
	return child
}

// Sqrt returns the square root of x, defined for x > 0.
func Sqrt(x *Node) *Node { return apply(elem.Sqrt, x) }

// Logistic returns the logistic function 1 / (1 + e^-x).
func Logistic(x *Node) *Node { return apply(elem.Logistic, x) }
