// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// types.go - FeatureSet.

package polyhedra

import (
	"slices"

	"github.com/katalvlaran/lvfractal/geom"
)

// FeatureSet groups the representative points of one solid (or of a
// procedural arrangement): vertices, edge midpoints and face centroids.
type FeatureSet struct {
	Vertices []geom.Point3 `json:"vertices"`
	Edges    []geom.Point3 `json:"edges"`
	Faces    []geom.Point3 `json:"faces"`
}

// Clone returns a deep copy so cached sets are never exposed for mutation.
func (f FeatureSet) Clone() FeatureSet {
	return FeatureSet{
		Vertices: slices.Clone(f.Vertices),
		Edges:    slices.Clone(f.Edges),
		Faces:    slices.Clone(f.Faces),
	}
}

// Len returns the total number of feature points.
func (f FeatureSet) Len() int {
	return len(f.Vertices) + len(f.Edges) + len(f.Faces)
}
