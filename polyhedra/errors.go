// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package polyhedra

import "errors"

// ErrUnknownSolid indicates a solid identifier outside the five Platonic solids.
var ErrUnknownSolid = errors.New("polyhedra: unknown solid")
