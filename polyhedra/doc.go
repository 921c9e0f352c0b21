// SPDX-License-Identifier: MIT

// Package polyhedra extracts representative feature points of the five
// Platonic solids: vertices, edge midpoints and face centroids.
//
// Each solid keeps its natural coordinate scale (no global unit
// normalization):
//
//	Solid          V   E   F   vertex coordinates
//	Cube           8  12   6   (±1,±1,±1)
//	Tetrahedron    4   6   4   alternating-parity corners of the cube
//	Octahedron     6  12   8   (±1,0,0) and permutations
//	Icosahedron   12  30  20   (0,±1,±φ) and cyclic permutations
//	Dodecahedron  20  30  12   face centroids of the icosahedron (dual)
//
// Icosahedron and dodecahedron edges/faces are discovered by a fixed
// tolerance search (EdgeTolerance = 0.01) on the coordinates above; the
// tolerance and the coordinate scale belong together and must not be changed
// independently.
//
// Feature sets are built once per process behind a sync.Once barrier and are
// read-only afterwards, so concurrent readers need no locking. Features returns
// copies, callers may mutate what they receive.
//
// Skeleton exposes the vertex-index topology (chords at minimum pairwise
// distance) whose midpoints make up the edge features.
package polyhedra
