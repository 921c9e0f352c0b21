// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// api.go - resolution of feature sets and self-similar offsets.

package arrangement

import (
	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

// Resolve returns the feature set for (geometry, arrangement) following the
// package resolution order. It never fails: unknown values fall back to the
// cube.
func Resolve(g Geometry, a Arrangement, opts ...Option) polyhedra.FeatureSet {
	cfg := newConfig(opts...)
	return resolve(g, a, cfg)
}

func resolve(g Geometry, a Arrangement, cfg config) polyhedra.FeatureSet {
	if a != None {
		switch a {
		case Spiral:
			return spiralFeatures()
		case Random:
			return randomFeatures(cfg.uniform())
		}
		if s, ok := a.Solid(); ok {
			return polyhedra.MustFeatures(s)
		}
		return polyhedra.MustFeatures(polyhedra.Cube)
	}
	if s, ok := g.Solid(); ok {
		return polyhedra.MustFeatures(s)
	}
	return polyhedra.MustFeatures(polyhedra.Cube)
}

// Positions returns the self-similar offsets for a fractal whose children are
// shrunk by scale: every kept feature point P becomes P·(1−scale).
func Positions(g Geometry, rule Rule, scale float64, a Arrangement, opts ...Option) []geom.Point3 {
	return rule.Apply(Resolve(g, a, opts...), scale)
}

// Source produces offsets repeatedly for one (geometry, rule, scale,
// arrangement) tuple. Deterministic arrangements are resolved once;
// Random draws a fresh feature set on every call.
type Source struct {
	geometry    Geometry
	arrangement Arrangement
	rule        Rule
	scale       float64
	cfg         config
	fixed       []geom.Point3
}

// NewSource prepares a Source. Options are resolved once and shared by all
// calls to Next.
func NewSource(g Geometry, rule Rule, scale float64, a Arrangement, opts ...Option) *Source {
	s := &Source{
		geometry:    g,
		arrangement: a,
		rule:        rule,
		scale:       scale,
		cfg:         newConfig(opts...),
	}
	if !a.Stochastic() {
		s.fixed = rule.Apply(resolve(g, a, s.cfg), scale)
	}
	return s
}

// Next returns the offsets for one expansion. The returned slice must be
// treated as read-only.
func (s *Source) Next() []geom.Point3 {
	if s.fixed != nil {
		return s.fixed
	}
	return s.rule.Apply(resolve(s.geometry, s.arrangement, s.cfg), s.scale)
}

// Count returns the number of offsets per expansion. It is fixed for every
// arrangement, Random included.
func (s *Source) Count() int {
	if s.fixed != nil {
		return len(s.fixed)
	}
	n := 0
	if s.rule.KeepVertices {
		n += RandomPoints
	}
	if s.rule.KeepCenter {
		n++
	}
	return n
}
