// SPDX-License-Identifier: MIT
// Package: lvfractal/geom
//
// clamp.go - ingestion clamps shared by the numeric packages.

package geom

// Clamp limits v to [lo, hi]. The lower bound wins when hi < lo, and NaN
// maps to lo, so no invalid value survives the boundary.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if !(v >= lo) {
		return lo
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}
