// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// impl_dodecahedron.go - dodecahedron as the dual of the icosahedron.
//
//   • Vertices = icosahedron face centroids (20).
//   • Faces    = icosahedron vertices (12).
//   • Edges    = vertex pairs at the minimum pairwise distance, found with
//                the same EdgeTolerance (30).

package polyhedra

func buildDodecahedron(ico FeatureSet) FeatureSet {
	vertices := ico.Clone().Faces
	faces := icosahedronVertices()

	if len(vertices) < 2 {
		return FeatureSet{Vertices: vertices, Faces: faces}
	}

	edgeLen := minPairDistance(vertices)
	edges := midpoints(vertices, chordsAt(vertices, edgeLen, EdgeTolerance))

	return FeatureSet{Vertices: vertices, Edges: edges, Faces: faces}
}
