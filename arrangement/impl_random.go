// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// impl_random.go - uniform points on the unit sphere surface.
//
// Inverse-transform sampling: θ = 2πu, φ = acos(2v−1), so the density is
// uniform in area rather than bunched at the poles.

package arrangement

import (
	"math"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

func randomFeatures(uniform func() float64) polyhedra.FeatureSet {
	points := make([]geom.Point3, 0, RandomPoints)
	for i := 0; i < RandomPoints; i++ {
		u := uniform()
		v := uniform()
		theta := 2 * math.Pi * u
		phi := math.Acos(2*v - 1)
		sinPhi := math.Sin(phi)
		points = append(points, geom.P(
			sinPhi*math.Cos(theta),
			sinPhi*math.Sin(theta),
			math.Cos(phi),
		))
	}
	return polyhedra.FeatureSet{Vertices: points}
}
