// SPDX-License-Identifier: MIT
// Package: lvfractal/geom
//
// transform.go - matrix form of a leaf Transform.

package geom

// Matrix returns the column-major 4×4 matrix T·S where T translates by
// Position and S scales uniformly by Size. This is the layout instanced-mesh
// renderers expect for per-instance matrices.
func (t Transform) Matrix() [16]float64 {
	s := t.Size
	return [16]float64{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		t.Position.X, t.Position.Y, t.Position.Z, 1,
	}
}

// Apply maps a mesh-local point into world space: Position + p·Size.
func (t Transform) Apply(p Point3) Point3 {
	return Point3{
		X: t.Position.X + p.X*t.Size,
		Y: t.Position.Y + p.Y*t.Size,
		Z: t.Position.Z + p.Z*t.Size,
	}
}
