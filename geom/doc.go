// SPDX-License-Identifier: MIT

// Package geom holds the small geometric vocabulary shared by every lvfractal
// package: points, leaf transforms and skeleton chords.
//
// Point3 is an alias of gonum's r3.Vec, so all vector arithmetic is done with
// the r3 package functions (r3.Add, r3.Sub, r3.Scale, r3.Norm). Values are
// immutable by convention: every helper returns a new value.
//
// What lives here:
//
//	Point3     - (x,y,z) float triple, alias of r3.Vec.
//	Transform  - leaf instance: translation + uniform scale.
//	Chord      - unordered vertex index pair (U<V) of a solid skeleton.
//
// Helpers never panic; empty inputs return the zero value.
package geom
