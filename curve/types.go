// SPDX-License-Identifier: MIT
// Package: lvfractal/curve
//
// types.go - curve family and configuration.

package curve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfractal/geom"
)

// ErrUnknownType indicates an unrecognised curve family name.
var ErrUnknownType = errors.New("curve: unknown type")

// Type selects the curve family.
type Type int

const (
	Rose Type = iota
	Hypotrochoid
	Epitrochoid
)

// Types lists every family in enum order.
var Types = []Type{Rose, Hypotrochoid, Epitrochoid}

func (t Type) String() string {
	switch t {
	case Rose:
		return "rose"
	case Hypotrochoid:
		return "hypotrochoid"
	case Epitrochoid:
		return "epitrochoid"
	default:
		return "unknown"
	}
}

// ParseType maps a family name (case-insensitive) to a Type.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types {
		if t.String() == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("ParseType: %q: %w", name, ErrUnknownType)
}

// Parameter domains.
const (
	MinSegments = 64
	MaxSegments = 4096

	MinA = 0.1
	MaxA = 10.0

	MinK = 0.5
	MaxK = 32.0

	MinR = 0.1
	MaxR = 10.0

	// MinSmallR is the lower bound of r; the upper bound is R − RadiusGap.
	MinSmallR = 0.1
	RadiusGap = 0.1

	// MinD is the lower bound of d; the upper bound is r.
	MinD = 0.1
)

// Config holds the curve parameters. SmallR is the rolling circle radius r,
// R the fixed circle radius and D the pen offset.
type Config struct {
	Type     Type    `yaml:"type" json:"type"`
	Segments int     `yaml:"segments" json:"segments"`
	A        float64 `yaml:"a" json:"a"`
	K        float64 `yaml:"k" json:"k"`
	R        float64 `yaml:"big_r" json:"big_r"`
	SmallR   float64 `yaml:"small_r" json:"small_r"`
	D        float64 `yaml:"d" json:"d"`
}

// Default returns a six-petal rose and the spirograph defaults.
func Default() Config {
	return Config{
		Type:     Rose,
		Segments: 512,
		A:        1,
		K:        6,
		R:        1,
		SmallR:   0.25,
		D:        0.5,
	}
}

// Clamp forces every parameter into its domain. r is clamped after R and d
// after r, so the dependent bounds use the clamped values.
func (c Config) Clamp() Config {
	c.Segments = geom.ClampInt(c.Segments, MinSegments, MaxSegments)
	c.A = geom.Clamp(c.A, MinA, MaxA)
	c.K = geom.Clamp(c.K, MinK, MaxK)
	c.R = geom.Clamp(c.R, MinR, MaxR)
	c.SmallR = geom.Clamp(c.SmallR, MinSmallR, c.R-RadiusGap)
	c.D = geom.Clamp(c.D, MinD, c.SmallR)
	return c
}

// MarshalText encodes the family by name.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a family name.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
