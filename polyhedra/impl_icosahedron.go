// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// impl_icosahedron.go - golden-ratio icosahedron.
//
// Vertices are the three cyclic groups (0,±1,±φ), (±1,±φ,0), (±φ,0,±1).
// The edge length of this embedding is exactly 2, so:
//   • Edges: every pair at distance 2 (±EdgeTolerance) → 30 midpoints.
//   • Faces: every triple pairwise at distance 2       → 20 centroids.
//
// The triple search is O(V³) with V=12 and runs once per process.

package polyhedra

import "github.com/katalvlaran/lvfractal/geom"

func icosahedronVertices() []geom.Point3 {
	t := Phi
	return []geom.Point3{
		// (0, ±1, ±φ)
		geom.P(0, 1, t), geom.P(0, 1, -t), geom.P(0, -1, t), geom.P(0, -1, -t),
		// (±1, ±φ, 0)
		geom.P(1, t, 0), geom.P(1, -t, 0), geom.P(-1, t, 0), geom.P(-1, -t, 0),
		// (±φ, 0, ±1)
		geom.P(t, 0, 1), geom.P(t, 0, -1), geom.P(-t, 0, 1), geom.P(-t, 0, -1),
	}
}

func buildIcosahedron() FeatureSet {
	vertices := icosahedronVertices()

	chords := chordsAt(vertices, icosaEdgeLength, EdgeTolerance)
	edges := midpoints(vertices, chords)

	faces := make([]geom.Point3, 0, 20)
	n := len(vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !isEdge(vertices[i], vertices[j], icosaEdgeLength) {
				continue
			}
			for k := j + 1; k < n; k++ {
				if isEdge(vertices[j], vertices[k], icosaEdgeLength) &&
					isEdge(vertices[k], vertices[i], icosaEdgeLength) {
					faces = append(faces, geom.Centroid(vertices[i], vertices[j], vertices[k]))
				}
			}
		}
	}

	return FeatureSet{Vertices: vertices, Edges: edges, Faces: faces}
}

func isEdge(a, b geom.Point3, length float64) bool {
	return geom.NearlyEqual(geom.Distance(a, b), length, EdgeTolerance)
}
