// Package main provides the Deriv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/deriv-ml/deriv/forward"
	"github.com/deriv-ml/deriv/reverse"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Deriv %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Deriv - Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate f = 7*x^3 + 3*y in both modes")
}

// demo evaluates the same expression with each engine.
func demo() {
	vars := forward.FromSlice([]float64{2, 4})
	x, y := vars[0], vars[1]
	f := forward.Mul(7, x.Pow(3)).Add(y.Mul(3))
	fmt.Println("forward:  f =", f.Value(), "df =", f.Derivative())

	nodes := reverse.FromSlice([]float64{2, 4})
	u, v := nodes[0], nodes[1]
	g := reverse.Mul(7, u.Pow(3)).Add(v.Mul(3))
	fmt.Println("reverse:  f =", g.Value(), "df/dx =", u.Grad(), "df/dy =", v.Grad())
}
