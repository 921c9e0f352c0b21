// SPDX-License-Identifier: MIT
// Package: lvfractal/polyhedra
//
// variants.go - the Solid enumeration and its textual form.

package polyhedra

import (
	"fmt"
	"strings"
)

// Solid enumerates the five Platonic solids.
type Solid int

// Enum values (stable ordering).
const (
	Cube         Solid = iota // V=8,  E=12, F=6
	Tetrahedron               // V=4,  E=6,  F=4
	Octahedron                // V=6,  E=12, F=8
	Icosahedron               // V=12, E=30, F=20
	Dodecahedron              // V=20, E=30, F=12
)

// Solids lists every solid in enum order.
var Solids = []Solid{Cube, Tetrahedron, Octahedron, Icosahedron, Dodecahedron}

// String returns the lower-case identifier used in configs ("cube", ...).
func (s Solid) String() string {
	switch s {
	case Cube:
		return "cube"
	case Tetrahedron:
		return "tetrahedron"
	case Octahedron:
		return "octahedron"
	case Icosahedron:
		return "icosahedron"
	case Dodecahedron:
		return "dodecahedron"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the five enum values.
func (s Solid) Valid() bool {
	return s >= Cube && s <= Dodecahedron
}

// ParseSolid maps an identifier (case-insensitive) to a Solid.
func ParseSolid(name string) (Solid, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Solids {
		if s.String() == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", methodParse, name, ErrUnknownSolid)
}

// MarshalText encodes the solid by name.
func (s Solid) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
