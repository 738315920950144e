package forward

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/deriv-ml/deriv/internal/elem"
)

// apply evaluates one elementary function on a Dual: value f(x), derivative
// f'(x) * x' (chain rule). Domain violations panic with a DomainError
// before anything is evaluated.
func apply(f elem.Func, x *Dual) *Dual {
	if f.Check != nil {
		if err := f.Check(x.val); err != nil {
			panic(err)
		}
	}
	der := make([]float64, len(x.der))
	floats.ScaleTo(der, f.Deriv(x.val), x.der)
	return &Dual{val: f.Eval(x.val), der: der}
}

// Sin returns the sine of x.
func Sin(x *Dual) *Dual { return apply(elem.Sin, x) }

// Cos returns the cosine of x.
func Cos(x *Dual) *Dual { return apply(elem.Cos, x) }

// Tan returns the tangent of x. At odd multiples of pi/2 the derivative is
// undefined and Tan panics with a DomainError.
func Tan(x *Dual) *Dual { return apply(elem.Tan, x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x *Dual) *Dual { return apply(elem.Sinh, x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x *Dual) *Dual { return apply(elem.Cosh, x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x *Dual) *Dual { return apply(elem.Tanh, x) }

// Asin returns the inverse sine of x, defined for |x| < 1.
func Asin(x *Dual) *Dual { return apply(elem.Asin, x) }

// Acos returns the inverse cosine of x, defined for |x| < 1.
func Acos(x *Dual) *Dual { return apply(elem.Acos, x) }

// Atan returns the inverse tangent of x.
func Atan(x *Dual) *Dual { return apply(elem.Atan, x) }

// Exp returns e raised to x.
func Exp(x *Dual) *Dual { return apply(elem.Exp, x) }

// Log returns the natural logarithm of x, defined for x > 0.
func Log(x *Dual) *Dual { return apply(elem.Log, x) }

// LogBase returns the logarithm of x in the given base. The base must be
// positive and x must be positive.
func LogBase(x *Dual, base float64) *Dual {
	if err := elem.CheckLogBase(base); err != nil {
		panic(err)
	}
	y := apply(elem.Log, x)
	scale := 1 / math.Log(base)
	y.val *= scale
	floats.Scale(scale, y.der)
	return y
}

// Sqrt returns the square root of x, defined for x > 0.
func Sqrt(x *Dual) *Dual { return apply(elem.Sqrt, x) }

// Logistic returns the logistic function 1 / (1 + e^-x).
func Logistic(x *Dual) *Dual { return apply(elem.Logistic, x) }
