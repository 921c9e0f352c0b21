// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// budget.go - adaptive depth reduction.

package instancer

import "github.com/katalvlaran/lvfractal/geom"

// PlanBudget computes the effective depth for n children per level so that
// n^effectiveDepth ≤ limit. depth is clamped to [MinDepth, MaxDepth] and limit
// to [1, MaxInstances] first.
//
// For n ≤ 1 the tree never widens, so the requested depth is kept.
func PlanBudget(n, depth, limit int) Budget {
	depth = geom.ClampInt(depth, MinDepth, MaxDepth)
	limit = geom.ClampInt(limit, 1, MaxInstances)

	b := Budget{N: n, RequestedDepth: depth, EffectiveDepth: depth, Estimate: 1}
	if n <= 1 {
		return b
	}

	estimate := 1
	for i := 0; i < depth; i++ {
		estimate *= n
	}
	for estimate > limit && b.EffectiveDepth > 0 {
		estimate /= n
		b.EffectiveDepth--
	}
	b.Estimate = estimate
	return b
}
