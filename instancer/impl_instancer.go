// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// impl_instancer.go - budgeted depth-first expansion.
//
// Complexity:
//   • Time:  O(N^effectiveDepth) leaves, bounded by the instance budget.
//   • Space: O(N·depth) stack entries plus the output slice.

package instancer

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfractal/arrangement"
	"github.com/katalvlaran/lvfractal/geom"
)

// Compute returns the leaf transforms of cfg. It is Run without the
// bookkeeping.
func Compute(cfg Config, opts ...Option) []geom.Transform {
	return Run(cfg, opts...).Transforms
}

// Run clamps cfg, plans the budget and expands the fractal.
func Run(cfg Config, opts ...Option) Result {
	o := newOptions(opts...)
	cfg = cfg.Clamp()

	src := arrangement.NewSource(cfg.Geometry, cfg.Rule, cfg.Scale, cfg.Arrangement, o.arrOpts...)
	budget := PlanBudget(src.Count(), cfg.Depth, o.limit)
	logBudget(o.logger, "fractal", budget)

	root := node{position: geom.Origin, size: cfg.BaseSize, levelRemaining: budget.EffectiveDepth}
	leaves := expand(root, budget, src.Next, featureRadiusFactor, cfg.Scale)

	res := Result{Transforms: leaves, Budget: budget}
	if len(leaves) == 0 {
		o.logger.Debug("no leaves produced, substituting root",
			zap.Stringer("geometry", cfg.Geometry),
			zap.Strings("kept", cfg.Rule.Kept()),
		)
		res.Transforms = []geom.Transform{{Position: geom.Origin, Size: cfg.BaseSize}}
		res.Fallback = true
	}
	return res
}

// expand walks the implicit tree depth-first with an owned stack. next yields
// the unit offsets for one expansion; a child of n sits at
// n.position + cp·(n.size·offsetFactor) with size n.size·childScale.
func expand(root node, b Budget, next func() []geom.Point3, offsetFactor, childScale float64) []geom.Transform {
	leaves := make([]geom.Transform, 0, b.Estimate)
	stack := newNodeStack(b.N*b.EffectiveDepth + 1)
	stack.push(root)

	for stack.len() > 0 {
		n, _ := stack.pop()
		if n.levelRemaining <= 0 {
			leaves = append(leaves, geom.Transform{Position: n.position, Size: n.size})
			continue
		}

		offsets := next()
		reach := n.size * offsetFactor
		childSize := n.size * childScale
		for _, cp := range offsets {
			stack.push(node{
				position: geom.Point3{
					X: n.position.X + cp.X*reach,
					Y: n.position.Y + cp.Y*reach,
					Z: n.position.Z + cp.Z*reach,
				},
				size:           childSize,
				levelRemaining: n.levelRemaining - 1,
			})
		}
	}
	return leaves
}

func logBudget(l *zap.Logger, kind string, b Budget) {
	if !b.Reduced() {
		return
	}
	l.Debug("instance budget reduced depth",
		zap.String("kind", kind),
		zap.Int("n", b.N),
		zap.Int("requested_depth", b.RequestedDepth),
		zap.Int("effective_depth", b.EffectiveDepth),
		zap.Int("estimate", b.Estimate),
	)
}
