// SPDX-License-Identifier: MIT

// Package instancer expands a self-similar fractal into a flat list of leaf
// transforms (translation + uniform scale) for an instanced-mesh renderer.
//
// Algorithm (Compute / Run):
//
//  1. Resolve the offsets once at scale 1 to obtain N, the copies per level.
//  2. Budget clamp: estimate = N^depth; while estimate > MaxInstances and the
//     effective depth is positive, divide by N and drop one level. Only the
//     depth shrinks; N is never altered.
//  3. Depth-first expansion from an explicit, slice-backed stack seeded with
//     the root {origin, BaseSize, effectiveDepth}. A node with no levels left
//     is emitted as a leaf; otherwise each offset cp spawns a child at
//     pos + cp·(size/2) with size·Scale. Feature coordinates are defined at
//     radius 1, half of a full extent of 2, hence the /2.
//  4. No leaves at all (empty retention rule) → exactly one fallback
//     transform at the root.
//
// Inputs are clamped, never rejected: Depth ∈ [0,5], Scale ∈ [0.1,0.5],
// BaseSize ≥ 0.1. The output never exceeds MaxInstances (20000) transforms.
//
// The multiset of transforms is deterministic for every arrangement except
// Random; even then the count is fixed. Callers must not depend on the order
// of the returned slice.
//
// MengerSponge is the classic 20-of-27 cube subdivision, expanded by the same
// stack machinery and bounded by the same budget.
package instancer
