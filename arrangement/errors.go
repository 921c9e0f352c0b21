// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// errors.go - sentinel errors for identifier parsing. Resolution itself never
// fails: unknown values fall back to the cube.

package arrangement

import "errors"

var (
	// ErrUnknownGeometry indicates a geometry identifier that is not recognised.
	ErrUnknownGeometry = errors.New("arrangement: unknown geometry")

	// ErrUnknownArrangement indicates an arrangement identifier that is not recognised.
	ErrUnknownArrangement = errors.New("arrangement: unknown arrangement")
)
