// SPDX-License-Identifier: MIT
// Package: lvfractal/geom
//
// types.go - value types consumed by the instancer, the curve generator and
// external renderers.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// Point3 is an immutable (x,y,z) triple.
type Point3 = r3.Vec

// Origin is the point (0,0,0).
var Origin = Point3{}

// Transform is a final leaf placement: a translation paired with a uniform
// scale, applied to one shared mesh by the renderer.
type Transform struct {
	Position Point3  `json:"position"`
	Size     float64 `json:"size"`
}

// Chord is an unordered pair of vertex indices with U < V.
type Chord struct {
	U int `json:"u"`
	V int `json:"v"`
}

// NewChord orders the pair so that U < V.
func NewChord(a, b int) Chord {
	if a > b {
		a, b = b, a
	}
	return Chord{U: a, V: b}
}
