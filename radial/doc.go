// SPDX-License-Identifier: MIT

// Package radial produces rotate+scale clone transforms for a base curve.
//
// Clone i ∈ [0, Count) is rotated about +Z by i·RotationDeg (converted to
// radians) and scaled by ScalePerClone^i, compounding per clone. All clones
// share one base point list; nothing is resampled per clone.
//
// Domains (clamped): Count ∈ [1,64], RotationDeg ∈ [0,360],
// ScalePerClone ∈ [0.5,2].
package radial
