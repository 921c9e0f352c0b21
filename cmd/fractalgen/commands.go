// SPDX-License-Identifier: MIT

package main

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfractal/arrangement"
	"github.com/katalvlaran/lvfractal/curve"
	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/instancer"
	"github.com/katalvlaran/lvfractal/polyhedra"
	"github.com/katalvlaran/lvfractal/radial"
	"github.com/katalvlaran/lvfractal/stats"
)

var transformsCommand = command{
	usage: "instance transforms of the recursive fractal",
	flags: fractalFlags,
	exec: func(env *runEnv) (any, error) {
		f := env.cfg.Fractal
		opts := append(f.InstancerOptions(), instancer.WithLogger(env.log))
		res := instancer.Run(f.Config, opts...)

		env.log.Info("transforms computed",
			zap.Stringer("geometry", f.Geometry),
			zap.Int("transforms", len(res.Transforms)),
			zap.Bool("fallback", res.Fallback))
		reportBudget(env.summary, res)
		return res, nil
	},
}

var mengerCommand = command{
	usage: "instance transforms of the Menger sponge",
	flags: fractalFlags,
	exec: func(env *runEnv) (any, error) {
		f := env.cfg.Fractal
		opts := append(f.InstancerOptions(), instancer.WithLogger(env.log))
		res := instancer.MengerSponge(f.BaseSize, f.Depth, opts...)

		env.log.Info("menger sponge computed", zap.Int("transforms", len(res.Transforms)))
		reportBudget(env.summary, res)
		env.summary.add("dimension", "%.4f", stats.Dimension(instancer.MengerChildren, 1.0/3))
		return res, nil
	},
}

// positionsOutput is one level of offsets.
type positionsOutput struct {
	Geometry    arrangement.Geometry    `json:"geometry"`
	Arrangement arrangement.Arrangement `json:"arrangement"`
	Scale       float64                 `json:"scale"`
	Positions   []geom.Point3           `json:"positions"`
}

var positionsCommand = command{
	usage: "one level of self-similar offsets",
	flags: fractalFlags,
	exec: func(env *runEnv) (any, error) {
		f := env.cfg.Fractal
		c := f.Clamp()
		var opts []arrangement.Option
		if f.Seed != 0 {
			opts = append(opts, arrangement.WithSeed(f.Seed))
		}
		pos := arrangement.Positions(c.Geometry, c.Rule, c.Scale, c.Arrangement, opts...)

		env.log.Debug("positions resolved", zap.Int("count", len(pos)))
		env.summary.add("positions", "%d", len(pos))
		return positionsOutput{
			Geometry:    c.Geometry,
			Arrangement: c.Arrangement,
			Scale:       c.Scale,
			Positions:   pos,
		}, nil
	},
}

// featuresOutput describes one solid.
type featuresOutput struct {
	Solid polyhedra.Solid `json:"solid"`
	polyhedra.FeatureSet
	Skeleton []geom.Chord `json:"skeleton"`
}

var featuresCommand = command{
	usage: "feature points and skeleton of a Platonic solid",
	flags: func(fs *flagSet) {
		fs.String("solid", polyhedra.Cube.String(), "solid name")
	},
	exec: func(env *runEnv) (any, error) {
		name := env.fs.Lookup("solid").Value.String()
		s, err := polyhedra.ParseSolid(name)
		if err != nil {
			return nil, err
		}
		set, err := polyhedra.Features(s)
		if err != nil {
			return nil, err
		}
		sk, err := polyhedra.Skeleton(s)
		if err != nil {
			return nil, err
		}

		env.summary.add("solid", "%s", s)
		env.summary.add("V/E/F", "%d/%d/%d", len(set.Vertices), len(set.Edges), len(set.Faces))
		return featuresOutput{Solid: s, FeatureSet: set, Skeleton: sk}, nil
	},
}

// cloneOutput is a clone plus its matrix.
type cloneOutput struct {
	radial.Clone
	Matrix [16]float64 `json:"matrix"`
}

// curveOutput is one curve and its radial clones.
type curveOutput struct {
	Config curve.Config  `json:"config"`
	Points []geom.Point3 `json:"points"`
	Clones []cloneOutput `json:"clones"`
}

var curveCommand = command{
	usage: "parametric curve points plus radial clone transforms",
	flags: curveFlags,
	exec: func(env *runEnv) (any, error) {
		cfg := env.cfg.Curve.Clamp()
		pts := curve.Points(cfg)
		clones := radial.Clones(env.cfg.Repeat)

		out := curveOutput{Config: cfg, Points: pts, Clones: make([]cloneOutput, len(clones))}
		for i, c := range clones {
			out.Clones[i] = cloneOutput{Clone: c, Matrix: c.Matrix()}
		}

		env.log.Info("curve computed",
			zap.Stringer("type", cfg.Type),
			zap.Int("points", len(pts)),
			zap.Int("clones", len(clones)))
		env.summary.add("curve", "%s", cfg.Type)
		env.summary.add("points", "%d", len(pts))
		env.summary.add("clones", "%d", len(clones))
		return out, nil
	},
}

var statsCommand = command{
	usage: "copy count and similarity dimension",
	flags: fractalFlags,
	exec: func(env *runEnv) (any, error) {
		c := env.cfg.Fractal.Clamp()
		st := stats.Compute(c.Geometry, c.Rule, c.Scale, c.Arrangement)

		env.summary.add("name", "%s", st.Name)
		env.summary.add("components", "%s", st.Components)
		env.summary.add("N", "%d", st.N)
		env.summary.add("D", "%.4f", st.D)
		return st, nil
	},
}

func reportBudget(s *summary, res instancer.Result) {
	b := res.Budget
	s.add("children", "%d", b.N)
	s.add("depth", "%d", b.EffectiveDepth)
	s.add("transforms", "%d", len(res.Transforms))
	if b.Reduced() {
		s.warn("budget", "depth reduced from %d to %d (estimate %d)", b.RequestedDepth, b.EffectiveDepth, b.Estimate)
	}
	if res.Fallback {
		s.warn("fallback", "no offsets kept, root substituted")
	}
}
