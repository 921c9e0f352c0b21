// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// cache.go - write-once, process-wide feature table.
//
// Contract:
//   • Built lazily on first access under sync.Once.
//   • Never mutated afterwards; readers need no locks.
//   • Skeletons are derived from the same vertex arrays.

package polyhedra

import (
	"sync"

	"github.com/katalvlaran/lvfractal/geom"
)

type table struct {
	features  map[Solid]FeatureSet
	skeletons map[Solid][]geom.Chord
}

var (
	cacheOnce sync.Once
	cache     table
)

func loadTable() *table {
	cacheOnce.Do(func() {
		ico := buildIcosahedron()
		features := map[Solid]FeatureSet{
			Cube:         buildCube(),
			Tetrahedron:  buildTetrahedron(),
			Octahedron:   buildOctahedron(),
			Icosahedron:  ico,
			Dodecahedron: buildDodecahedron(ico),
		}
		skeletons := make(map[Solid][]geom.Chord, len(features))
		for s, fs := range features {
			skeletons[s] = chordsAt(fs.Vertices, minPairDistance(fs.Vertices), EdgeTolerance)
		}
		cache = table{features: features, skeletons: skeletons}
	})
	return &cache
}
