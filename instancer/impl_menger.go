// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// impl_menger.go - classic Menger sponge.
//
// Of the 27 sub-cubes at integer offsets (x,y,z) ∈ {-1,0,1}³, the 7 with two
// or more zero coordinates (face centres and body centre) are removed; the 20
// remaining sit at offset·size/3 with size/3.

package instancer

import "github.com/katalvlaran/lvfractal/geom"

// MengerChildren is the number of sub-cubes kept per level.
const MengerChildren = 20

var mengerOffsets = buildMengerOffsets()

func buildMengerOffsets() []geom.Point3 {
	out := make([]geom.Point3, 0, MengerChildren)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				zeros := 0
				for _, c := range [3]int{x, y, z} {
					if c == 0 {
						zeros++
					}
				}
				if zeros < 2 {
					out = append(out, geom.P(float64(x), float64(y), float64(z)))
				}
			}
		}
	}
	return out
}

// MengerSponge returns the leaf cubes of a Menger sponge of the given full
// size and depth. Size is clamped to ≥ MinBaseSize and depth to
// [MinDepth, MaxDepth]; the instance budget applies as for Run.
func MengerSponge(size float64, depth int, opts ...Option) Result {
	o := newOptions(opts...)
	size = geom.Clamp(size, MinBaseSize, maxFloat)

	budget := PlanBudget(MengerChildren, depth, o.limit)
	logBudget(o.logger, "menger", budget)

	next := func() []geom.Point3 { return mengerOffsets }
	root := node{position: geom.Origin, size: size, levelRemaining: budget.EffectiveDepth}
	const third = 1.0 / mengerDivisions

	return Result{
		Transforms: expand(root, budget, next, third, third),
		Budget:     budget,
	}
}
