// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// types.go - Geometry and Arrangement identifiers.
//
// Geometry is the mesh that is instanced; Arrangement optionally overrides
// where the children go. Both enums start with the cube so that the zero
// value of Geometry is a usable default, while the zero value of Arrangement
// means "not supplied".

package arrangement

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfractal/polyhedra"
)

// Geometry identifies the base mesh of a fractal.
type Geometry int

const (
	GeometryCube Geometry = iota
	GeometryTetrahedron
	GeometryOctahedron
	GeometryIcosahedron
	GeometryDodecahedron
	// GeometryFreehand is a user-drawn mesh; its placements follow the cube.
	GeometryFreehand
)

// Geometries lists every geometry in enum order.
var Geometries = []Geometry{
	GeometryCube, GeometryTetrahedron, GeometryOctahedron,
	GeometryIcosahedron, GeometryDodecahedron, GeometryFreehand,
}

func (g Geometry) String() string {
	if g == GeometryFreehand {
		return "freehand"
	}
	if s, ok := g.Solid(); ok {
		return s.String()
	}
	return "unknown"
}

// Solid maps the geometry to the Platonic solid whose features it uses.
// Freehand reports false.
func (g Geometry) Solid() (polyhedra.Solid, bool) {
	switch g {
	case GeometryCube:
		return polyhedra.Cube, true
	case GeometryTetrahedron:
		return polyhedra.Tetrahedron, true
	case GeometryOctahedron:
		return polyhedra.Octahedron, true
	case GeometryIcosahedron:
		return polyhedra.Icosahedron, true
	case GeometryDodecahedron:
		return polyhedra.Dodecahedron, true
	default:
		return 0, false
	}
}

// ParseGeometry maps an identifier (case-insensitive) to a Geometry.
func ParseGeometry(name string) (Geometry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, g := range Geometries {
		if g.String() == key {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", methodParseGeometry, name, ErrUnknownGeometry)
}

// Arrangement identifies the generator of child placements.
type Arrangement int

const (
	// None means no explicit arrangement: the geometry decides.
	None Arrangement = iota
	Cube
	Tetrahedron
	Octahedron
	Icosahedron
	Dodecahedron
	Spiral
	Random
)

// Arrangements lists every explicit arrangement (None excluded).
var Arrangements = []Arrangement{
	Cube, Tetrahedron, Octahedron, Icosahedron, Dodecahedron, Spiral, Random,
}

func (a Arrangement) String() string {
	switch a {
	case None:
		return ""
	case Spiral:
		return "spiral"
	case Random:
		return "random"
	}
	if s, ok := a.Solid(); ok {
		return s.String()
	}
	return "unknown"
}

// Solid maps solid arrangements to their polyhedron.
func (a Arrangement) Solid() (polyhedra.Solid, bool) {
	switch a {
	case Cube:
		return polyhedra.Cube, true
	case Tetrahedron:
		return polyhedra.Tetrahedron, true
	case Octahedron:
		return polyhedra.Octahedron, true
	case Icosahedron:
		return polyhedra.Icosahedron, true
	case Dodecahedron:
		return polyhedra.Dodecahedron, true
	default:
		return 0, false
	}
}

// Stochastic reports whether two resolutions may differ.
func (a Arrangement) Stochastic() bool {
	return a == Random
}

// ParseArrangement maps an identifier (case-insensitive) to an Arrangement.
// The empty string and "none" map to None.
func ParseArrangement(name string) (Arrangement, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "none" {
		return None, nil
	}
	for _, a := range Arrangements {
		if a.String() == key {
			return a, nil
		}
	}
	return None, fmt.Errorf("%s: %q: %w", methodParseArrangement, name, ErrUnknownArrangement)
}

// MarshalText encodes the geometry by name.
func (g Geometry) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText decodes a geometry name.
func (g *Geometry) UnmarshalText(b []byte) error {
	v, err := ParseGeometry(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalText encodes the arrangement by name; None encodes as "".
func (a Arrangement) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes an arrangement name.
func (a *Arrangement) UnmarshalText(b []byte) error {
	v, err := ParseArrangement(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
