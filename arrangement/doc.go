// SPDX-License-Identifier: MIT

// Package arrangement resolves the feature set that seeds a self-similar
// fractal and filters it through a retention rule into child offsets.
//
// Resolution order for Positions / Resolve:
//
//  1. an explicit Arrangement (five solids, Spiral, Random) → its generator;
//  2. otherwise the cached feature set of the Geometry;
//  3. otherwise the cube.
//
// Procedural arrangements:
//
//	Spiral - 32-point Fibonacci sphere, all points classified as vertices.
//	Random - 20 points uniform on the unit sphere surface (inverse-transform
//	         sampling). Non-deterministic unless WithSeed / WithRand is given;
//	         the count is always 20 and every point has unit length.
//
// Scaling rule: a kept feature point P becomes P·(1−scale). A child shrunk by
// scale then has its own corresponding feature exactly on the parent's
// feature, which gives seamless attachment for every solid.
//
// Offsets are concatenated vertices → edges → faces → origin (if KeepCenter).
// A rule with every flag false yields an empty, non-nil slice.
package arrangement
