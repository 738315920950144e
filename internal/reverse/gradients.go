package reverse

import "fmt"

// Gradients computes the partial derivative of terminal with respect to
// each of the given leaves, without touching the nodes' accumulation
// caches. It is a pure query against one named terminal, useful when
// several expressions share leaves and the implicit-terminal Grad would
// sum over all of them.
//
// A leaf with no recorded uses at all (an unused variable) has gradient
// zero. It returns an IncompleteGraphError if the named terminal still
// feeds other operations (the expression above it is not fully built) or
// if a leaf belongs to some expression but has no path to this terminal.
func Gradients(terminal *Node, leaves ...*Node) ([]float64, error) {
	if len(terminal.uses) != 0 {
		return nil, &IncompleteGraphError{Reason: fmt.Sprintf("terminal %v still feeds %d operation(s)", terminal, len(terminal.uses))}
	}
	grads := make([]float64, len(leaves))
	memo := map[*Node]float64{terminal: 1}
	for i, leaf := range leaves {
		if leaf == terminal {
			grads[i] = 1
			continue
		}
		if leaf.constant || len(leaf.uses) == 0 {
			// Constants and unused variables contribute nothing.
			grads[i] = 0
			continue
		}
		if !reaches(leaf, terminal, make(map[*Node]bool)) {
			return nil, &IncompleteGraphError{Reason: fmt.Sprintf("%v is not connected to terminal %v", leaf, terminal)}
		}
		grads[i] = gradWrt(leaf, memo)
	}
	return grads, nil
}

// gradWrt sums weight * grad(consumer) over n's use edges, memoized per
// query. The memo table is seeded with the terminal at 1; paths that dead
// end at some other expression's terminal contribute zero.
func gradWrt(n *Node, memo map[*Node]float64) float64 {
	if g, ok := memo[n]; ok {
		return g
	}
	var g float64
	for _, e := range n.uses {
		g += e.weight * gradWrt(e.to, memo)
	}
	memo[n] = g
	return g
}

func reaches(n, terminal *Node, seen map[*Node]bool) bool {
	if n == terminal {
		return true
	}
	if seen[n] {
		return false
	}
	seen[n] = true
	for _, e := range n.uses {
		if reaches(e.to, terminal, seen) {
			return true
		}
	}
	return false
}
