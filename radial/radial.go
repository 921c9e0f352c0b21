// SPDX-License-Identifier: MIT
// Package: lvfractal/radial
//
// radial.go - configuration, clone descriptors and their application.

package radial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvfractal/geom"
)

// Domains.
const (
	MinCount = 1
	MaxCount = 64

	MinRotationDeg = 0.0
	MaxRotationDeg = 360.0

	MinScale = 0.5
	MaxScale = 2.0
)

// zAxis is the rotation axis of every clone.
var zAxis = r3.Vec{Z: 1}

// Config describes the radial repetition.
type Config struct {
	Count         int     `yaml:"count" json:"count"`
	RotationDeg   float64 `yaml:"rotation_deg" json:"rotation_deg"`
	ScalePerClone float64 `yaml:"scale_per_clone" json:"scale_per_clone"`
}

// Default is a single, unrotated, unscaled copy with a 15° step ready.
func Default() Config {
	return Config{Count: 1, RotationDeg: 15, ScalePerClone: 1}
}

// Clamp forces every field into its domain.
func (c Config) Clamp() Config {
	c.Count = geom.ClampInt(c.Count, MinCount, MaxCount)
	c.RotationDeg = geom.Clamp(c.RotationDeg, MinRotationDeg, MaxRotationDeg)
	c.ScalePerClone = geom.Clamp(c.ScalePerClone, MinScale, MaxScale)
	return c
}

// Clone is the transform of one copy of the base curve.
type Clone struct {
	Index int `json:"index"`
	// Rotation about +Z, radians.
	Rotation float64 `json:"rotation"`
	// Scale is the uniform scale factor.
	Scale float64 `json:"scale"`
}

// Clones returns the Count clone descriptors of cfg (after clamping).
func Clones(cfg Config) []Clone {
	c := cfg.Clamp()
	out := make([]Clone, c.Count)
	for i := range out {
		out[i] = Clone{
			Index:    i,
			Rotation: c.RotationDeg * float64(i) * math.Pi / 180,
			Scale:    math.Pow(c.ScalePerClone, float64(i)),
		}
	}
	return out
}

// RotationDeg returns the rotation in degrees.
func (c Clone) RotationDeg() float64 {
	return c.Rotation * 180 / math.Pi
}

// Apply maps a base-curve point into the clone's frame: scale, then rotate
// about +Z.
func (c Clone) Apply(p geom.Point3) geom.Point3 {
	return r3.NewRotation(c.Rotation, zAxis).Rotate(r3.Scale(c.Scale, p))
}

// Matrix returns the column-major 4×4 matrix R_z(Rotation)·S(Scale).
func (c Clone) Matrix() [16]float64 {
	sin, cos := math.Sincos(c.Rotation)
	s := c.Scale
	return [16]float64{
		cos * s, sin * s, 0, 0,
		-sin * s, cos * s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}
