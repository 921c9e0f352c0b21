// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// impl_tetrahedron.go - regular tetrahedron inscribed in the ±1 cube.
//
// The four corners are the even-parity sign patterns of the cube, so every
// pair is an edge and every triple is a face.

package polyhedra

import "github.com/katalvlaran/lvfractal/geom"

// tetraFaces are the vertex triples of the four faces, in emission order.
var tetraFaces = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

func buildTetrahedron() FeatureSet {
	vertices := []geom.Point3{
		geom.P(1, 1, 1),
		geom.P(1, -1, -1),
		geom.P(-1, 1, -1),
		geom.P(-1, -1, 1),
	}

	edges := make([]geom.Point3, 0, 6)
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			edges = append(edges, geom.Midpoint(vertices[i], vertices[j]))
		}
	}

	faces := make([]geom.Point3, 0, len(tetraFaces))
	for _, f := range tetraFaces {
		faces = append(faces, geom.Centroid(vertices[f[0]], vertices[f[1]], vertices[f[2]]))
	}

	return FeatureSet{Vertices: vertices, Edges: edges, Faces: faces}
}
