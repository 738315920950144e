// Package elem holds the elementary-function catalogue shared by the
// forward-mode and reverse-mode engines.
//
// Each Func carries the primal transform, its analytic local derivative,
// and an optional domain check. Both engines evaluate derivatives through
// this table, so the chain-rule formulas cannot drift between modes.
package elem

import "math"

// Func describes one elementary function: its primal transform, the local
// derivative evaluated at the primal value, and an optional domain check
// that must pass before either is evaluated.
type Func struct {
	Name  string
	Eval  func(x float64) float64
	Deriv func(x float64) float64
	Check func(x float64) error // nil when the domain is all reals
}

// cosPoleTol matches the tolerance used to reject tan at odd multiples
// of pi/2 (where cos vanishes and the derivative blows up).
const cosPoleTol = 1e-8

// Sigmoid computes the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

var (
	Sin = Func{
		Name:  "sin",
		Eval:  math.Sin,
		Deriv: math.Cos,
	}

	Cos = Func{
		Name:  "cos",
		Eval:  math.Cos,
		Deriv: func(x float64) float64 { return -math.Sin(x) },
	}

	Tan = Func{
		Name: "tan",
		Eval: math.Tan,
		Deriv: func(x float64) float64 {
			c := math.Cos(x)
			return 1 / (c * c)
		},
		Check: func(x float64) error {
			if math.Abs(math.Cos(x)) < cosPoleTol {
				return &DomainError{Fn: "tan", Value: x, Reason: "derivative is undefined at odd multiples of pi/2"}
			}
			return nil
		},
	}

	Sinh = Func{
		Name:  "sinh",
		Eval:  math.Sinh,
		Deriv: math.Cosh,
	}

	Cosh = Func{
		Name:  "cosh",
		Eval:  math.Cosh,
		Deriv: math.Sinh,
	}

	Tanh = Func{
		Name: "tanh",
		Eval: math.Tanh,
		Deriv: func(x float64) float64 {
			t := math.Tanh(x)
			return 1 - t*t
		},
	}

	Asin = Func{
		Name: "asin",
		Eval: math.Asin,
		Deriv: func(x float64) float64 {
			return 1 / math.Sqrt(1-x*x)
		},
		Check: checkUnitInterval("asin"),
	}

	Acos = Func{
		Name: "acos",
		Eval: math.Acos,
		Deriv: func(x float64) float64 {
			return -1 / math.Sqrt(1-x*x)
		},
		Check: checkUnitInterval("acos"),
	}

	Atan = Func{
		Name: "atan",
		Eval: math.Atan,
		Deriv: func(x float64) float64 { return 1 / (1 + x*x) },
	}

	Exp = Func{
		Name:  "exp",
		Eval:  math.Exp,
		Deriv: math.Exp,
	}

	Log = Func{
		Name:  "log",
		Eval:  math.Log,
		Deriv: func(x float64) float64 { return 1 / x },
		Check: func(x float64) error {
			if x <= 0 {
				return &DomainError{Fn: "log", Value: x, Reason: "undefined for x <= 0"}
			}
			return nil
		},
	}

	Sqrt = Func{
		Name: "sqrt",
		Eval: math.Sqrt,
		Deriv: func(x float64) float64 {
			return 0.5 / math.Sqrt(x)
		},
		Check: func(x float64) error {
			if x <= 0 {
				return &DomainError{Fn: "sqrt", Value: x, Reason: "derivative is undefined for x <= 0"}
			}
			return nil
		},
	}

	Logistic = Func{
		Name: "logistic",
		Eval: Sigmoid,
		Deriv: func(x float64) float64 {
			s := Sigmoid(x)
			return s * (1 - s)
		},
	}
)

// CheckLogBase validates the base of a LogBase call. The base is a plain
// real, never a tracked value, so the check lives here rather than in a
// Func entry.
func CheckLogBase(base float64) error {
	if base <= 0 {
		return &DomainError{Fn: "log", Value: base, Reason: "base must be positive"}
	}
	return nil
}

func checkUnitInterval(fn string) func(float64) error {
	return func(x float64) error {
		if math.Abs(x) >= 1 {
			return &DomainError{Fn: fn, Value: x, Reason: "derivative is undefined for |x| >= 1"}
		}
		return nil
	}
}
