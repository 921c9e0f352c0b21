// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// impl_spiral.go - Fibonacci sphere.
//
//   yᵢ = 1 − 2i/(n−1),  radiusᵢ = √(1−yᵢ²),  θᵢ = i·π(3−√5)
//   pointᵢ = (cos θᵢ·radiusᵢ, yᵢ, sin θᵢ·radiusᵢ)

package arrangement

import (
	"math"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

// goldenAngle is π(3−√5).
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

func spiralFeatures() polyhedra.FeatureSet {
	n := SpiralPoints
	points := make([]geom.Point3, 0, n)
	for i := 0; i < n; i++ {
		y := 1 - float64(i)/float64(n-1)*2
		radius := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		points = append(points, geom.P(math.Cos(theta)*radius, y, math.Sin(theta)*radius))
	}
	return polyhedra.FeatureSet{Vertices: points}
}
