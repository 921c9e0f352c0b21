// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// constants.go - numeric constants of the feature extractor.

package polyhedra

import "math"

// Phi is the golden ratio (1+√5)/2.
var Phi = (1 + math.Sqrt(5)) / 2

const (
	// EdgeTolerance is the absolute epsilon used when matching pairwise
	// distances against an edge length. It is tied to the coordinate scale
	// documented in doc.go.
	EdgeTolerance = 0.01

	// icosaEdgeLength is the edge length of the (0,±1,±φ) icosahedron.
	icosaEdgeLength = 2.0
)

const (
	methodFeatures = "Features"
	methodSkeleton = "Skeleton"
	methodParse    = "ParseSolid"
)
