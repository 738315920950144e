// Copyright 2025 The Deriv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward

import (
	"github.com/deriv-ml/deriv/internal/elem"
	"github.com/deriv-ml/deriv/internal/forward"
)

// Dual is a dual number: a primal value plus an immutable derivative
// vector of fixed length.
type Dual = forward.Dual

// DomainError reports an operation evaluated outside its mathematical
// domain.
type DomainError = elem.DomainError

// ShapeError reports two operands whose derivative vectors have different
// lengths.
type ShapeError = forward.ShapeError

// UnknownOperationError reports an operand outside the supported type set.
type UnknownOperationError = elem.UnknownOperationError

// New creates a Dual for a single independent variable, seeded with the
// unit derivative [1].
func New(val float64) *Dual { return forward.New(val) }

// NewSeeded creates a Dual with an explicit seed vector; the seed's length
// fixes the number of independent variables.
func NewSeeded(val float64, seed []float64) *Dual { return forward.NewSeeded(val, seed) }

// Constant creates a Dual with a zero derivative vector of length ndim.
func Constant(val float64, ndim int) *Dual { return forward.Constant(val, ndim) }

// FromSlice creates one Dual per entry of vals, each seeded with the
// corresponding unit vector of length len(vals).
func FromSlice(vals []float64) []*Dual { return forward.FromSlice(vals) }

// Add returns a + b where at least one operand is a *Dual.
func Add(a, b any) *Dual { return forward.Add(a, b) }

// Sub returns a - b where at least one operand is a *Dual.
func Sub(a, b any) *Dual { return forward.Sub(a, b) }

// Mul returns a * b where at least one operand is a *Dual.
func Mul(a, b any) *Dual { return forward.Mul(a, b) }

// Div returns a / b where at least one operand is a *Dual.
func Div(a, b any) *Dual { return forward.Div(a, b) }

// Pow returns a raised to the power b where at least one operand is a
// *Dual.
func Pow(a, b any) *Dual { return forward.Pow(a, b) }

// Sin returns the sine of x.
func Sin(x *Dual) *Dual { return forward.Sin(x) }

// Cos returns the cosine of x.
func Cos(x *Dual) *Dual { return forward.Cos(x) }

// Tan returns the tangent of x.
func Tan(x *Dual) *Dual { return forward.Tan(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x *Dual) *Dual { return forward.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x *Dual) *Dual { return forward.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x *Dual) *Dual { return forward.Tanh(x) }

// Asin returns the inverse sine of x.
func Asin(x *Dual) *Dual { return forward.Asin(x) }

// Acos returns the inverse cosine of x.
func Acos(x *Dual) *Dual { return forward.Acos(x) }

// Atan returns the inverse tangent of x.
func Atan(x *Dual) *Dual { return forward.Atan(x) }

// Exp returns e raised to x.
func Exp(x *Dual) *Dual { return forward.Exp(x) }

// Log returns the natural logarithm of x.
func Log(x *Dual) *Dual { return forward.Log(x) }

// LogBase returns the logarithm of x in the given positive base.
func LogBase(x *Dual, base float64) *Dual { return forward.LogBase(x, base) }

// Sqrt returns the square root of x.
func Sqrt(x *Dual) *Dual { return forward.Sqrt(x) }

// Logistic returns the logistic function 1 / (1 + e^-x).
func Logistic(x *Dual) *Dual { return forward.Logistic(x) }
