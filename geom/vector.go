// SPDX-License-Identifier: MIT
// Package: lvfractal/geom
//
// vector.go - thin helpers over gonum r3 used by the feature extractor.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// P builds a Point3 from its coordinates.
func P(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point3) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Midpoint returns (a+b)/2.
func Midpoint(a, b Point3) Point3 {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Centroid returns the arithmetic mean of pts, or Origin for an empty input.
func Centroid(pts ...Point3) Point3 {
	if len(pts) == 0 {
		return Origin
	}
	var sum Point3
	for _, p := range pts {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(pts)), sum)
}

// ScaleAll returns a new slice holding every point of pts multiplied by f.
// A nil or empty input yields an empty, non-nil slice.
func ScaleAll(pts []Point3, f float64) []Point3 {
	out := make([]Point3, len(pts))
	for i, p := range pts {
		out[i] = r3.Scale(f, p)
	}
	return out
}

// NearlyEqual reports whether |a-b| < eps.
func NearlyEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
