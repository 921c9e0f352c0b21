// SPDX-License-Identifier: MIT

// Package curve samples the rose / spirograph family of planar curves.
//
//	rose:          ρ(t) = a·cos(k·t);            (ρ·cos t, ρ·sin t)
//	hypotrochoid:  q = R−r;  (q·cos t + d·cos(q/r·t), q·sin t − d·sin(q/r·t))
//	epitrochoid:   q = R+r;  (q·cos t − d·cos(q/r·t), q·sin t − d·sin(q/r·t))
//
// Parameters are clamped on the way in (see Config.Clamp); r ≥ 0.1 keeps
// q/r finite. Points samples Segments+1 values of t evenly over [0, 20π]
// (ten full turns, so self-overlapping patterns close for any k), scales every
// point by 0.5 and places it at z = 0.
//
// Points is a pure function: identical inputs give bit-identical output.
package curve
