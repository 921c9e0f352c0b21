// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfractal/arrangement"
	"github.com/katalvlaran/lvfractal/internal/config"
)

// setter writes one flag value into a config.
type setter func(c *config.Config, v string) error

// flagSet records config overrides while parsing and replays them once the
// file and environment layers have been resolved.
type flagSet struct {
	*flag.FlagSet
	scratch config.Config
	pending []func(*config.Config) error
}

func newFlagSet(name string, out io.Writer) *flagSet {
	fs := flag.NewFlagSet("fractalgen "+name, flag.ContinueOnError)
	fs.SetOutput(out)
	return &flagSet{FlagSet: fs, scratch: config.Default()}
}

// override registers a value flag. The value is validated at parse time.
func (f *flagSet) override(name, usage string, set setter) {
	f.Func(name, usage, f.record(set))
}

// toggle registers a boolean flag.
func (f *flagSet) toggle(name, usage string, set setter) {
	f.BoolFunc(name, usage, f.record(set))
}

func (f *flagSet) record(set setter) func(string) error {
	return func(v string) error {
		if err := set(&f.scratch, v); err != nil {
			return err
		}
		f.pending = append(f.pending, func(c *config.Config) error { return set(c, v) })
		return nil
	}
}

func (f *flagSet) apply(c config.Config) (config.Config, error) {
	prev := c
	for _, p := range f.pending {
		if err := p(&c); err != nil {
			return prev, err
		}
	}
	if err := c.Validate(); err != nil {
		return prev, err
	}
	return config.Sanitize(c, prev), nil
}

func floatField(field func(*config.Config) *float64) setter {
	return func(c *config.Config, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = x
		return nil
	}
}

func intField(field func(*config.Config) *int) setter {
	return func(c *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolField(field func(*config.Config) *bool) setter {
	return func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// parseRule reads a comma-separated list of kept categories
// ("vertices,edges,faces,center"); "none" keeps nothing.
func parseRule(v string) (arrangement.Rule, error) {
	var r arrangement.Rule
	for _, part := range strings.Split(v, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "vertices", "v":
			r.KeepVertices = true
		case "edges", "e":
			r.KeepEdges = true
		case "faces", "f":
			r.KeepFaces = true
		case "center", "c":
			r.KeepCenter = true
		case "none", "":
		default:
			return arrangement.Rule{}, fmt.Errorf("unknown category %q", part)
		}
	}
	return r, nil
}

// fractalFlags registers the fractal section overrides.
func fractalFlags(fs *flagSet) {
	fs.override("geometry", "base geometry (cube, tetrahedron, octahedron, icosahedron, dodecahedron, freehand)",
		func(c *config.Config, v string) error { return c.Fractal.Geometry.UnmarshalText([]byte(v)) })
	fs.override("arrangement", "child arrangement (none, a solid name, spiral, random)",
		func(c *config.Config, v string) error { return c.Fractal.Arrangement.UnmarshalText([]byte(v)) })
	fs.override("keep", "kept categories, comma-separated (vertices,edges,faces,center or none)",
		func(c *config.Config, v string) error {
			r, err := parseRule(v)
			if err != nil {
				return err
			}
			c.Fractal.Rule = r
			return nil
		})
	fs.override("scale", "child scale factor", floatField(func(c *config.Config) *float64 { return &c.Fractal.Scale }))
	fs.override("size", "base size", floatField(func(c *config.Config) *float64 { return &c.Fractal.BaseSize }))
	fs.override("depth", "recursion depth", intField(func(c *config.Config) *int { return &c.Fractal.Depth }))
	fs.override("seed", "seed for the random arrangement (0 = random)",
		func(c *config.Config, v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			c.Fractal.Seed = n
			return nil
		})
	fs.override("budget", "instance ceiling (0 = default)", intField(func(c *config.Config) *int { return &c.Fractal.Budget }))
}

// curveFlags registers the curve and repeat section overrides.
func curveFlags(fs *flagSet) {
	fs.override("type", "curve family (rose, hypotrochoid, epitrochoid)",
		func(c *config.Config, v string) error { return c.Curve.Type.UnmarshalText([]byte(v)) })
	fs.override("segments", "sample segments", intField(func(c *config.Config) *int { return &c.Curve.Segments }))
	fs.override("a", "rose amplitude", floatField(func(c *config.Config) *float64 { return &c.Curve.A }))
	fs.override("k", "rose frequency", floatField(func(c *config.Config) *float64 { return &c.Curve.K }))
	fs.override("R", "fixed circle radius", floatField(func(c *config.Config) *float64 { return &c.Curve.R }))
	fs.override("r", "rolling circle radius", floatField(func(c *config.Config) *float64 { return &c.Curve.SmallR }))
	fs.override("d", "pen offset", floatField(func(c *config.Config) *float64 { return &c.Curve.D }))
	fs.override("count", "radial clone count", intField(func(c *config.Config) *int { return &c.Repeat.Count }))
	fs.override("rotation", "rotation step in degrees", floatField(func(c *config.Config) *float64 { return &c.Repeat.RotationDeg }))
	fs.override("clone-scale", "scale step per clone", floatField(func(c *config.Config) *float64 { return &c.Repeat.ScalePerClone }))
}

// logFlags registers the log section overrides shared by every command.
func logFlags(fs *flagSet) {
	fs.override("log-level", "log level (debug, info, warn, error)",
		func(c *config.Config, v string) error { c.Log.Level = v; return nil })
	fs.toggle("v", "development logging at debug level", boolField(func(c *config.Config) *bool { return &c.Log.Development }))
	fs.toggle("compact", "compact JSON output", func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Output.Indent = !b
		return nil
	})
}
