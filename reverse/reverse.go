// Copyright 2025 The Deriv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

import (
	"github.com/deriv-ml/deriv/internal/elem"
	"github.com/deriv-ml/deriv/internal/reverse"
)

// Node is one value of a recorded computation graph: a primal value, a
// cached accumulated gradient, and the weighted edges into the operations
// it fed.
type Node = reverse.Node

// DomainError reports an operation evaluated outside its mathematical
// domain.
type DomainError = elem.DomainError

// IncompleteGraphError reports a gradient query the recorded graph cannot
// answer.
type IncompleteGraphError = reverse.IncompleteGraphError

// UnknownOperationError reports an operand outside the supported type set.
type UnknownOperationError = elem.UnknownOperationError

// New creates a leaf node for one independent variable.
func New(val float64) *Node { return reverse.New(val) }

// Constant creates a node whose gradient is never tracked.
func Constant(val float64) *Node { return reverse.Constant(val) }

// FromSlice creates one leaf node per entry of vals, each with an
// independent gradient slot.
func FromSlice(vals []float64) []*Node { return reverse.FromSlice(vals) }

// ZeroGrad clears the cached gradients and recorded uses of the given
// nodes so they can seed a fresh, independent expression.
func ZeroGrad(nodes ...*Node) { reverse.ZeroGrad(nodes...) }

// Gradients computes the partial derivative of terminal with respect to
// each leaf, without touching the nodes' accumulation caches.
func Gradients(terminal *Node, leaves ...*Node) ([]float64, error) {
	return reverse.Gradients(terminal, leaves...)
}

// Add returns a + b where at least one operand is a *Node.
func Add(a, b any) *Node { return reverse.Add(a, b) }

// Sub returns a - b where at least one operand is a *Node.
func Sub(a, b any) *Node { return reverse.Sub(a, b) }

// Mul returns a * b where at least one operand is a *Node.
func Mul(a, b any) *Node { return reverse.Mul(a, b) }

// Div returns a / b where at least one operand is a *Node.
func Div(a, b any) *Node { return reverse.Div(a, b) }

// Pow returns a raised to the power b where at least one operand is a
// *Node.
func Pow(a, b any) *Node { return reverse.Pow(a, b) }

// Sin returns the sine of x.
func Sin(x *Node) *Node { return reverse.Sin(x) }

// Cos returns the cosine of x.
func Cos(x *Node) *Node { return reverse.Cos(x) }

// Tan returns the tangent of x.
func Tan(x *Node) *Node { return reverse.Tan(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x *Node) *Node { return reverse.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x *Node) *Node { return reverse.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x *Node) *Node { return reverse.Tanh(x) }

// Asin returns the inverse sine of x.
func Asin(x *Node) *Node { return reverse.Asin(x) }

// Acos returns the inverse cosine of x.
func Acos(x *Node) *Node { return reverse.Acos(x) }

// Atan returns the inverse tangent of x.
func Atan(x *Node) *Node { return reverse.Atan(x) }

// Exp returns e raised to x.
func Exp(x *Node) *Node { return reverse.Exp(x) }

// Log returns the natural logarithm of x.
func Log(x *Node) *Node { return reverse.Log(x) }

// LogBase returns the logarithm of x in the given positive base.
func LogBase(x *Node, base float64) *Node { return reverse.LogBase(x, base) }

// Sqrt returns the square root of x.
func Sqrt(x *Node) *Node { return reverse.Sqrt(x) }

// Logistic returns the logistic function 1 / (1 + e^-x).
func Logistic(x *Node) *Node { return reverse.Logistic(x) }
