// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// types.go - inputs and outputs of the instancer.

package instancer

import (
	"github.com/katalvlaran/lvfractal/arrangement"
	"github.com/katalvlaran/lvfractal/geom"
)

// Config describes one fractal. Use Clamp (or let Run do it) before reading
// the numeric fields as trusted values.
type Config struct {
	Geometry    arrangement.Geometry    `yaml:"geometry" json:"geometry"`
	Arrangement arrangement.Arrangement `yaml:"arrangement" json:"arrangement"`
	Rule        arrangement.Rule        `yaml:"rule" json:"rule"`
	BaseSize    float64                 `yaml:"base_size" json:"base_size"`
	Depth       int                     `yaml:"depth" json:"depth"`
	Scale       float64                 `yaml:"scale" json:"scale"`
}

// Default returns a cube fractal keeping vertices, one level deep.
func Default() Config {
	return Config{
		Geometry: arrangement.GeometryCube,
		Rule:     arrangement.Rule{KeepVertices: true},
		BaseSize: DefaultBaseSize,
		Depth:    DefaultDepth,
		Scale:    DefaultScale,
	}
}

// Clamp returns a copy with every numeric field forced into its domain.
func (c Config) Clamp() Config {
	c.BaseSize = geom.Clamp(c.BaseSize, MinBaseSize, maxFloat)
	c.Depth = geom.ClampInt(c.Depth, MinDepth, MaxDepth)
	c.Scale = geom.Clamp(c.Scale, MinScale, MaxScale)
	return c
}

// Budget reports how the instance ceiling shaped the recursion.
type Budget struct {
	// N is the number of children per expansion.
	N int `json:"n"`
	// RequestedDepth is the clamped depth before budgeting.
	RequestedDepth int `json:"requested_depth"`
	// EffectiveDepth is the depth actually expanded.
	EffectiveDepth int `json:"effective_depth"`
	// Estimate is N^EffectiveDepth (1 when N ≤ 1).
	Estimate int `json:"estimate"`
}

// Reduced reports whether the budget cut levels off the requested depth.
func (b Budget) Reduced() bool {
	return b.EffectiveDepth < b.RequestedDepth
}

// Result is the full outcome of Run.
type Result struct {
	Transforms []geom.Transform `json:"transforms"`
	Budget     Budget           `json:"budget"`
	// Fallback is true when no leaf was produced and the root was substituted.
	Fallback bool `json:"fallback"`
}

// node is a transient stack entry.
type node struct {
	position       geom.Point3
	size           float64
	levelRemaining int
}
