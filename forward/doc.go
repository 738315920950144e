// Copyright 2025 The Deriv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward provides forward-mode automatic differentiation for the
// Deriv engine.
//
// # Overview
//
// Forward mode propagates derivatives alongside values using dual numbers:
// each Dual holds a primal scalar and a derivative vector with one entry
// per independent variable. Every operator and elementary function returns
// a new Dual whose value and derivative are computed in the same step via
// the chain rule, so after evaluating an expression once, the result's
// Derivative is the full Jacobian row.
//
// # Basic Usage
//
//	import "github.com/deriv-ml/deriv/forward"
//
//	func main() {
//	    vars := forward.FromSlice([]float64{2, 4})
//	    x, y := vars[0], vars[1]
//
//	    // f = 7*x^3 + 3*y
//	    f := forward.Mul(7, x.Pow(3)).Add(y.Mul(3))
//
//	    f.Value()      // 68
//	    f.Derivative() // [84 3]
//	}
//
// Binary operations accept either another *Dual or a plain real (float64,
// float32 or int). The package-level Add, Sub, Mul, Div and Pow cover the
// operand order with the plain real on the left, e.g. forward.Sub(2, x)
// for 2 - x.
//
// # Errors
//
// Operations fail eagerly instead of producing NaN or Inf: elementary
// functions panic with a *DomainError outside their mathematical domain,
// binary operations panic with a *ShapeError when two Duals carry
// derivative vectors of different lengths, and operands outside the
// supported type set panic with an *UnknownOperationError.
//
// Comparisons are the exception: they compare primal values only, never
// panic, and never inspect derivative state. Two Duals with equal values
// but different derivative vectors compare equal.
//
// Duals are immutable, so sharing them across goroutines is safe.
package forward
