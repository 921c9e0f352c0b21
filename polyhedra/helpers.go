// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// helpers.go - pairwise distance searches shared by the solids.

package polyhedra

import (
	"math"

	"github.com/katalvlaran/lvfractal/geom"
)

// chordsAt returns every pair (i<j) whose distance is within tol of length,
// in lexicographic (i,j) order.
func chordsAt(vertices []geom.Point3, length, tol float64) []geom.Chord {
	var out []geom.Chord
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if geom.NearlyEqual(geom.Distance(vertices[i], vertices[j]), length, tol) {
				out = append(out, geom.Chord{U: i, V: j})
			}
		}
	}
	return out
}

// minPairDistance returns the smallest distance over all pairs, or +Inf when
// fewer than two points are given.
func minPairDistance(vertices []geom.Point3) float64 {
	best := math.Inf(1)
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if d := geom.Distance(vertices[i], vertices[j]); d < best {
				best = d
			}
		}
	}
	return best
}

func midpoints(vertices []geom.Point3, chords []geom.Chord) []geom.Point3 {
	out := make([]geom.Point3, 0, len(chords))
	for _, c := range chords {
		out = append(out, geom.Midpoint(vertices[c.U], vertices[c.V]))
	}
	return out
}
