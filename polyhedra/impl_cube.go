// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// impl_cube.go - cube features on the (±1,±1,±1) corners.
//
// Emission order (stable):
//   • Vertices: x, then y, then z over {-1,+1}.
//   • Edges:    x-parallel (0,y,z), y-parallel (x,0,z), z-parallel (x,y,0).
//   • Faces:    +x, -x, +y, -y, +z, -z.

package polyhedra

import "github.com/katalvlaran/lvfractal/geom"

var unitSigns = [2]float64{-1, 1}

func buildCube() FeatureSet {
	vertices := make([]geom.Point3, 0, 8)
	for _, x := range unitSigns {
		for _, y := range unitSigns {
			for _, z := range unitSigns {
				vertices = append(vertices, geom.P(x, y, z))
			}
		}
	}

	edges := make([]geom.Point3, 0, 12)
	for _, a := range unitSigns {
		for _, b := range unitSigns {
			edges = append(edges, geom.P(0, a, b))
		}
	}
	for _, a := range unitSigns {
		for _, b := range unitSigns {
			edges = append(edges, geom.P(a, 0, b))
		}
	}
	for _, a := range unitSigns {
		for _, b := range unitSigns {
			edges = append(edges, geom.P(a, b, 0))
		}
	}

	faces := []geom.Point3{
		geom.P(1, 0, 0), geom.P(-1, 0, 0),
		geom.P(0, 1, 0), geom.P(0, -1, 0),
		geom.P(0, 0, 1), geom.P(0, 0, -1),
	}

	return FeatureSet{Vertices: vertices, Edges: edges, Faces: faces}
}
