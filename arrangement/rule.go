// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// rule.go - the retention rule.

package arrangement

import (
	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

// Rule selects which feature categories populate the offset sequence.
type Rule struct {
	KeepVertices bool `yaml:"keep_vertices" json:"keep_vertices"`
	KeepEdges    bool `yaml:"keep_edges" json:"keep_edges"`
	KeepFaces    bool `yaml:"keep_faces" json:"keep_faces"`
	KeepCenter   bool `yaml:"keep_center" json:"keep_center"`
}

// Empty reports whether no category is kept.
func (r Rule) Empty() bool {
	return !r.KeepVertices && !r.KeepEdges && !r.KeepFaces && !r.KeepCenter
}

// Kept returns the names of the kept categories in emission order.
func (r Rule) Kept() []string {
	var out []string
	if r.KeepVertices {
		out = append(out, "Vertices")
	}
	if r.KeepEdges {
		out = append(out, "Edges")
	}
	if r.KeepFaces {
		out = append(out, "Faces")
	}
	if r.KeepCenter {
		out = append(out, "Center")
	}
	return out
}

// Apply filters fs and scales every kept point by (1−scale).
// Order: vertices, edges, faces, then one origin point if KeepCenter.
func (r Rule) Apply(fs polyhedra.FeatureSet, scale float64) []geom.Point3 {
	factor := 1 - scale

	out := make([]geom.Point3, 0, r.Count(fs))
	if r.KeepVertices {
		out = append(out, geom.ScaleAll(fs.Vertices, factor)...)
	}
	if r.KeepEdges {
		out = append(out, geom.ScaleAll(fs.Edges, factor)...)
	}
	if r.KeepFaces {
		out = append(out, geom.ScaleAll(fs.Faces, factor)...)
	}
	if r.KeepCenter {
		out = append(out, geom.Origin)
	}
	return out
}

// Count returns the number of offsets Apply would produce for fs.
func (r Rule) Count(fs polyhedra.FeatureSet) int {
	n := 0
	if r.KeepVertices {
		n += len(fs.Vertices)
	}
	if r.KeepEdges {
		n += len(fs.Edges)
	}
	if r.KeepFaces {
		n += len(fs.Faces)
	}
	if r.KeepCenter {
		n++
	}
	return n
}
