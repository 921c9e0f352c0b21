// Package lvfractal computes self-similar 3D fractals and parametric curves
// as plain data: instance transforms, offset lists and point sequences that
// an external renderer draws with one shared mesh or one polyline.
//
// 🚀 What is in the box?
//
//	• Feature points of the five Platonic solids (vertices, edge midpoints, face centroids)
//	• Arrangements: solid, golden-angle spiral and seedable random placements
//	• Recursive instancing under a hard instance budget (≤ 20000 leaves)
//	• The Menger sponge on the same budget
//	• Rose, hypotrochoid and epitrochoid curves with radial rotate+scale clones
//	• Copy count and similarity dimension statistics
//
// ✨ Guarantees
//
//   - Inputs are clamped, never rejected: no invalid state past the boundary
//   - Pure functions: identical inputs give bit-identical output (Random aside, unless seeded)
//   - Feature tables are built once and shared read-only across goroutines
//
// Packages:
//
//	geom/        - Point3 (gonum r3.Vec), Transform, Chord, clamping helpers
//	polyhedra/   - Platonic feature extraction and skeleton chords
//	arrangement/ - Geometry/Arrangement identifiers, retention Rule, offset Source
//	instancer/   - budgeted depth-first expansion and the Menger sponge
//	curve/       - rose and spirograph point sequences
//	radial/      - per-clone rotation and compounding scale
//	stats/       - N, r and D = ln N / ln(1/r)
//	cmd/fractalgen - JSON command-line front end
//
// Quick example (cube, keep vertices, r = 1/3):
//
//	pos := arrangement.Positions(arrangement.GeometryCube,
//		arrangement.Rule{KeepVertices: true}, 1.0/3, arrangement.None)
//	// 8 offsets at (±2/3, ±2/3, ±2/3)
//
//	go get github.com/katalvlaran/lvfractal
package lvfractal
