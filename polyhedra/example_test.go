package polyhedra_test

import (
	"fmt"

	"github.com/katalvlaran/lvfractal/polyhedra"
)

// ExampleCounts prints the Platonic (V,E,F) table produced by the extractor.
func ExampleCounts() {
	for _, s := range polyhedra.Solids {
		v, e, f, _ := polyhedra.Counts(s)
		fmt.Printf("%-12s %2d %2d %2d\n", s, v, e, f)
	}
	// Output:
	// cube          8 12  6
	// tetrahedron   4  6  4
	// octahedron    6 12  8
	// icosahedron  12 30 20
	// dodecahedron 20 30 12
}
