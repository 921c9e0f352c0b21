// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// api.go - public entry points of the feature extractor.

package polyhedra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfractal/geom"
)

// Features returns a copy of the cached feature set of s.
// Unknown solids → ErrUnknownSolid.
func Features(s Solid) (FeatureSet, error) {
	fs, ok := loadTable().features[s]
	if !ok {
		return FeatureSet{}, fmt.Errorf("%s: solid %d: %w", methodFeatures, int(s), ErrUnknownSolid)
	}
	return fs.Clone(), nil
}

// MustFeatures is Features for statically known solids; it panics on an
// unknown value.
func MustFeatures(s Solid) FeatureSet {
	fs, err := Features(s)
	if err != nil {
		panic(err)
	}
	return fs
}

// Skeleton returns the vertex index pairs at minimum pairwise distance,
// sorted by (U,V). Indices refer to Features(s).Vertices.
func Skeleton(s Solid) ([]geom.Chord, error) {
	ch, ok := loadTable().skeletons[s]
	if !ok {
		return nil, fmt.Errorf("%s: solid %d: %w", methodSkeleton, int(s), ErrUnknownSolid)
	}
	return slices.Clone(ch), nil
}

// Counts returns the number of vertex, edge and face features of s.
func Counts(s Solid) (vertices, edges, faces int, err error) {
	fs, ok := loadTable().features[s]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%s: solid %d: %w", methodFeatures, int(s), ErrUnknownSolid)
	}
	return len(fs.Vertices), len(fs.Edges), len(fs.Faces), nil
}
