// SPDX-License-Identifier: MIT
// Package: lvfractal/internal/config
//
// errors.go - sentinel errors.

package config

import "errors"

var (
	// ErrReadConfig is returned when a config or .env file cannot be read.
	ErrReadConfig = errors.New("config: cannot read configuration")

	// ErrInvalidConfig is returned for malformed documents, unknown keys,
	// unparsable values and out-of-range settings that cannot be clamped.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
