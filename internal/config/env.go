// SPDX-License-Identifier: MIT
// Package: lvfractal/internal/config
//
// env.go - LVFRACTAL_* overrides.

package config

import (
	"encoding"
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix prefixes every recognized variable.
const EnvPrefix = "LVFRACTAL_"

const methodApplyEnv = "ApplyEnv"

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays LVFRACTAL_* variables from the process environment.
func ApplyEnv(c Config) (Config, error) {
	return ApplyLookup(c, os.LookupEnv)
}

// ApplyLookup overlays variables resolved through lookup. Unparsable values
// fail with ErrInvalidConfig; non-finite floats keep the previous value.
func ApplyLookup(c Config, lookup LookupFunc) (Config, error) {
	prev := c
	e := envReader{lookup: lookup}

	e.text("GEOMETRY", &c.Fractal.Geometry)
	e.text("ARRANGEMENT", &c.Fractal.Arrangement)
	e.boolean("KEEP_VERTICES", &c.Fractal.Rule.KeepVertices)
	e.boolean("KEEP_EDGES", &c.Fractal.Rule.KeepEdges)
	e.boolean("KEEP_FACES", &c.Fractal.Rule.KeepFaces)
	e.boolean("KEEP_CENTER", &c.Fractal.Rule.KeepCenter)
	e.float("BASE_SIZE", &c.Fractal.BaseSize)
	e.integer("DEPTH", &c.Fractal.Depth)
	e.float("SCALE", &c.Fractal.Scale)
	e.int64("SEED", &c.Fractal.Seed)
	e.integer("BUDGET", &c.Fractal.Budget)

	e.text("CURVE_TYPE", &c.Curve.Type)
	e.integer("CURVE_SEGMENTS", &c.Curve.Segments)
	e.float("CURVE_A", &c.Curve.A)
	e.float("CURVE_K", &c.Curve.K)
	e.float("CURVE_BIG_R", &c.Curve.R)
	e.float("CURVE_SMALL_R", &c.Curve.SmallR)
	e.float("CURVE_D", &c.Curve.D)

	e.integer("REPEAT_COUNT", &c.Repeat.Count)
	e.float("REPEAT_ROTATION_DEG", &c.Repeat.RotationDeg)
	e.float("REPEAT_SCALE", &c.Repeat.ScalePerClone)

	e.str("OUTPUT", &c.Output.Path)
	e.str("LOG_LEVEL", &c.Log.Level)
	e.str("LOG_FILE", &c.Log.File)
	e.boolean("LOG_DEVELOPMENT", &c.Log.Development)

	if e.err != nil {
		return prev, e.err
	}
	if err := c.Validate(); err != nil {
		return prev, err
	}
	return Sanitize(c, prev), nil
}

// envReader stops at the first parse error.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (e *envReader) get(name string) (string, string, bool) {
	if e.err != nil {
		return "", "", false
	}
	key := EnvPrefix + name
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return key, "", false
	}
	return key, v, true
}

func (e *envReader) fail(key, v string, err error) {
	e.err = fmt.Errorf("%s: %s=%q: %w: %w", methodApplyEnv, key, v, ErrInvalidConfig, err)
}

func (e *envReader) str(name string, dst *string) {
	if _, v, ok := e.get(name); ok {
		*dst = v
	}
}

func (e *envReader) float(name string, dst *float64) {
	key, v, ok := e.get(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = f
}

func (e *envReader) integer(name string, dst *int) {
	key, v, ok := e.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = n
}

func (e *envReader) int64(name string, dst *int64) {
	key, v, ok := e.get(name)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = n
}

func (e *envReader) boolean(name string, dst *bool) {
	key, v, ok := e.get(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = b
}

func (e *envReader) text(name string, dst encoding.TextUnmarshaler) {
	key, v, ok := e.get(name)
	if !ok {
		return
	}
	if err := dst.UnmarshalText([]byte(v)); err != nil {
		e.fail(key, v, err)
	}
}
