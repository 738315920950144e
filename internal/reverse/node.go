// Package reverse implements reverse-mode automatic differentiation over a
// dynamically built computation graph. Every operation on Node operands
// computes its primal result immediately and records, on each operand, an
// edge to the result node weighted by the local partial derivative. A later
// gradient pass walks those edges from a node up to the expression's
// terminal, accumulating the total derivative over every path through the
// DAG with memoization, so shared subexpressions (diamond shapes) cost
// linear rather than exponential work.
//
// Nodes carry mutable gradient state and assume sequential use: build the
// expression, request gradients, then ZeroGrad before reusing a leaf in an
// independent expression. Requesting a gradient again after building a
// second expression from the same leaf without a reset adds the new
// expression's contribution to the cached value; that accumulation is the
// contract, not a defect.
package reverse

import "fmt"

// Node is one value produced during a forward evaluation, together with
// the bookkeeping needed to compute its gradient with respect to any
// downstream terminal: a cached accumulated gradient and the list of
// weighted edges into the nodes this one fed.
type Node struct {
	val float64

	// uses records, for every operation this node fed, the local partial
	// derivative of the result with respect to this node and the result
	// node itself. The graph is built strictly forward, so following uses
	// always terminates.
	uses []edge

	// grad caches the accumulated gradient. folded counts how many uses
	// edges have been folded into it; edges recorded after a Grad call
	// are folded in by the next call, which is what makes gradients
	// accumulate across expressions until ZeroGrad.
	grad   float64
	folded int

	// constant marks a node created from a plain real. Constants record
	// no uses and their gradient is always zero.
	constant bool
}

type edge struct {
	weight float64
	to     *Node
}

// New creates a leaf node for one independent variable.
func New(val float64) *Node {
	return &Node{val: val}
}

// Constant creates a node representing a plain real. Gradients are not
// tracked with respect to constants.
func Constant(val float64) *Node {
	return &Node{val: val, constant: true}
}

// FromSlice creates one leaf node per entry of vals, each with an
// independent gradient slot.
func FromSlice(vals []float64) []*Node {
	nodes := make([]*Node, len(vals))
	for i, v := range vals {
		nodes[i] = New(v)
	}
	return nodes
}

// Value returns the primal value.
func (n *Node) Value() float64 {
	return n.val
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%v)", n.val)
}

// addUse records that n fed an operation producing to, with the given
// local partial derivative d(to)/d(n). Constants record nothing.
func (n *Node) addUse(weight float64, to *Node) {
	if n.constant {
		return
	}
	n.uses = append(n.uses, edge{weight: weight, to: to})
}

// Grad returns the total derivative of the expression's terminal with
// respect to n, summed over every path that connects n to the terminal.
// The terminal is the downstream node with no recorded uses; its own
// gradient is 1. Results are memoized per node, so a diamond-shaped graph
// costs work linear in its edges.
//
// Grad is only meaningful once the enclosing expression has been fully
// built. The cached value persists until ZeroGrad: a second Grad call with
// no new operations returns the cache unchanged, while edges recorded by a
// later expression are folded in on top of it, yielding the sum of both
// expressions' gradients.
func (n *Node) Grad() float64 {
	if n.constant {
		return 0
	}
	if len(n.uses) == 0 {
		return 1
	}
	for ; n.folded < len(n.uses); n.folded++ {
		e := n.uses[n.folded]
		n.grad += e.weight * e.to.Grad()
	}
	return n.grad
}

// ZeroGrad clears the cached gradients and recorded uses of the given
// nodes, returning them to fresh leaves that can seed an independent
// expression. This is the only supported mutation of a node besides
// gradient accumulation itself.
func ZeroGrad(nodes ...*Node) {
	for _, n := range nodes {
		if n.constant {
			continue
		}
		n.uses = nil
		n.grad = 0
		n.folded = 0
	}
}
