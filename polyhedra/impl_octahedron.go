// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// impl_octahedron.go - octahedron with vertices on the coordinate axes.

package polyhedra

import "github.com/katalvlaran/lvfractal/geom"

var halfSigns = [2]float64{-0.5, 0.5}

func buildOctahedron() FeatureSet {
	vertices := []geom.Point3{
		geom.P(1, 0, 0), geom.P(-1, 0, 0),
		geom.P(0, 1, 0), geom.P(0, -1, 0),
		geom.P(0, 0, 1), geom.P(0, 0, -1),
	}

	// Midpoint of two vertices on different axes: (±0.5,±0.5,0) and permutations.
	edges := make([]geom.Point3, 0, 12)
	for _, i := range halfSigns {
		for _, j := range halfSigns {
			edges = append(edges,
				geom.P(i, j, 0),
				geom.P(i, 0, j),
				geom.P(0, i, j),
			)
		}
	}

	faces := make([]geom.Point3, 0, 8)
	for _, x := range unitSigns {
		for _, y := range unitSigns {
			for _, z := range unitSigns {
				faces = append(faces, geom.P(x/3, y/3, z/3))
			}
		}
	}

	return FeatureSet{Vertices: vertices, Edges: edges, Faces: faces}
}
