// Copyright 2025 The Deriv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reverse provides reverse-mode automatic differentiation for the
// Deriv engine.
//
// # Overview
//
// Reverse mode records a computation graph while an expression is
// evaluated: every operation on Node operands computes its primal result
// immediately and stores, on each operand, an edge to the result weighted
// by the local partial derivative. A later gradient pass walks those edges
// from a node to the expression's terminal with memoization, so all input
// gradients come out of one backward pass and shared subexpressions cost
// linear rather than exponential work.
//
// # Basic Usage
//
//	import "github.com/deriv-ml/deriv/reverse"
//
//	func main() {
//	    vars := reverse.FromSlice([]float64{2, 4})
//	    x, y := vars[0], vars[1]
//
//	    // f = 7*x^3 + 3*y
//	    f := reverse.Mul(7, x.Pow(3)).Add(y.Mul(3))
//
//	    f.Value() // 68
//	    x.Grad()  // 84
//	    y.Grad()  // 3
//	}
//
// # Gradient accumulation and reset
//
// A node's gradient is cached once computed. Building a second expression
// from the same leaf without resetting it makes the next Grad call add the
// new expression's contribution on top of the cache; the result is the sum
// of both gradients. Call ZeroGrad on the leaves before reusing them in an
// independent expression:
//
//	f1 := x.Mul(x)
//	g1 := x.Grad()          // d(f1)/dx
//	reverse.ZeroGrad(x)
//	f2 := x.Mul(3)
//	g2 := x.Grad()          // d(f2)/dx, not g1 + d(f2)/dx
//
// Gradients queries one named terminal without touching the caches and
// reports an *IncompleteGraphError when the graph cannot answer: the
// terminal still feeds other operations, or a leaf was never connected to
// it.
//
// # Errors
//
// The domain rules match forward mode: elementary functions panic with a
// *DomainError outside their domain and unsupported operand types panic
// with an *UnknownOperationError. Comparisons compare primal values only
// and never panic.
//
// Nodes carry mutable gradient state; a graph must not be used from
// multiple goroutines without external synchronization.
package reverse
