// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// constants.go - sizes of the procedural generators.

package arrangement

const (
	// SpiralPoints is the number of points on the Fibonacci sphere.
	SpiralPoints = 32

	// RandomPoints is the number of points drawn by the Random arrangement.
	RandomPoints = 20
)

const (
	methodParseGeometry    = "ParseGeometry"
	methodParseArrangement = "ParseArrangement"
)
