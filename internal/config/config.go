// SPDX-License-Identifier: MIT

// Package config loads the fractalgen configuration.
//
// Resolution order, later wins:
//
//  1. Default()
//  2. YAML document (Load / Decode); absent keys keep their current value
//  3. .env file (LoadEnvFile) merged into the process environment
//  4. LVFRACTAL_* variables (ApplyEnv)
//
// Numeric fields are then passed through Sanitize, which replaces NaN and
// ±Inf with the previous valid value. Range clamping is left to the library
// packages, which clamp on ingestion.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfractal/curve"
	"github.com/katalvlaran/lvfractal/instancer"
	"github.com/katalvlaran/lvfractal/internal/logging"
	"github.com/katalvlaran/lvfractal/radial"
)

const (
	methodLoad        = "Load"
	methodDecode      = "Decode"
	methodLoadEnvFile = "LoadEnvFile"
	methodValidate    = "Validate"
)

// Fractal is the instancer section plus run-level knobs.
type Fractal struct {
	instancer.Config `yaml:",inline"`
	// Seed drives the Random arrangement; 0 means non-deterministic.
	Seed int64 `yaml:"seed"`
	// Budget lowers the instance ceiling; 0 keeps instancer.MaxInstances.
	Budget int `yaml:"budget"`
}

// Output controls where JSON results are written.
type Output struct {
	// Path is the output file; empty means stdout.
	Path   string `yaml:"path"`
	Indent bool   `yaml:"indent"`
}

// Config is the whole document.
type Config struct {
	Fractal Fractal        `yaml:"fractal"`
	Curve   curve.Config   `yaml:"curve"`
	Repeat  radial.Config  `yaml:"repeat"`
	Output  Output         `yaml:"output"`
	Log     logging.Config `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fractal: Fractal{Config: instancer.Default()},
		Curve:   curve.Default(),
		Repeat:  radial.Default(),
		Output:  Output{Indent: true},
		Log:     logging.Default(),
	}
}

// Load reads the YAML file at path over base.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%s: %w: %w", methodLoad, ErrReadConfig, err)
	}
	return Decode(bytes.NewReader(data), base)
}

// Decode reads one YAML document from r over base. Unknown keys are
// rejected. An empty document leaves base unchanged.
func Decode(r io.Reader, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("%s: %w: %w", methodDecode, ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return Sanitize(cfg, base), nil
}

// LoadEnvFile merges a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: %w: %w", methodLoadEnvFile, ErrReadConfig, err)
	}
	return nil
}

// Validate reports settings that clamping cannot repair.
func (c Config) Validate() error {
	if c.Fractal.Budget < 0 || c.Fractal.Budget > instancer.MaxInstances {
		return fmt.Errorf("%s: budget %d outside [0,%d]: %w",
			methodValidate, c.Fractal.Budget, instancer.MaxInstances, ErrInvalidConfig)
	}
	return nil
}

// InstancerOptions translates run-level knobs into instancer options.
func (f Fractal) InstancerOptions() []instancer.Option {
	var opts []instancer.Option
	if f.Seed != 0 {
		opts = append(opts, instancer.WithSeed(f.Seed))
	}
	if f.Budget > 0 {
		opts = append(opts, instancer.WithInstanceBudget(f.Budget))
	}
	return opts
}

// Sanitize returns next with every non-finite float replaced by the
// corresponding value of prev.
func Sanitize(next, prev Config) Config {
	keep(&next.Fractal.BaseSize, prev.Fractal.BaseSize)
	keep(&next.Fractal.Scale, prev.Fractal.Scale)

	keep(&next.Curve.A, prev.Curve.A)
	keep(&next.Curve.K, prev.Curve.K)
	keep(&next.Curve.R, prev.Curve.R)
	keep(&next.Curve.SmallR, prev.Curve.SmallR)
	keep(&next.Curve.D, prev.Curve.D)

	keep(&next.Repeat.RotationDeg, prev.Repeat.RotationDeg)
	keep(&next.Repeat.ScalePerClone, prev.Repeat.ScalePerClone)
	return next
}

func keep(v *float64, prev float64) {
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		*v = prev
	}
}
