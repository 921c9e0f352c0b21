// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// constants.go - bounds and defaults.

package instancer

import "math"

const (
	// MaxInstances is the hard ceiling on leaf transforms.
	MaxInstances = 20000

	// MinDepth and MaxDepth bound the recursion depth.
	MinDepth = 0
	MaxDepth = 5

	// MinScale and MaxScale bound the child scale factor r.
	MinScale = 0.1
	MaxScale = 0.5

	// MinBaseSize is the smallest accepted root size.
	MinBaseSize = 0.1

	// DefaultBaseSize and DefaultScale are the values used by Default.
	DefaultBaseSize = 1.0
	DefaultScale    = 0.33
	DefaultDepth    = 1
)

// featureRadiusFactor converts a size (full extent) into the radius at which
// feature coordinates are defined.
const featureRadiusFactor = 0.5

// mengerDivisions is the per-axis subdivision of the Menger sponge.
const mengerDivisions = 3

// maxFloat is the open upper bound used when clamping sizes.
const maxFloat = math.MaxFloat64
