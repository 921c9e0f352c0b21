// SPDX-License-Identifier: MIT
// Package: lvfractal/curve
//
// impl_points.go - the sampler.

package curve

import (
	"math"

	"github.com/katalvlaran/lvfractal/geom"
)

const (
	// turns is the number of 2π periods sampled.
	turns = 10
	// pointScale normalizes the curve to fit the scene.
	pointScale = 0.5
)

// Points samples the curve described by cfg (after clamping) and returns
// Segments+1 points. A Type outside the enum is traced as an epitrochoid.
func Points(cfg Config) []geom.Point3 {
	c := cfg.Clamp()
	steps := c.Segments
	span := 2 * math.Pi * turns

	pts := make([]geom.Point3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps) * span
		x, y := c.sample(t)
		pts = append(pts, geom.P(x*pointScale, y*pointScale, 0))
	}
	return pts
}

// Steps returns the number of points Points produces for cfg.
func Steps(cfg Config) int {
	return cfg.Clamp().Segments + 1
}

// sample evaluates the clamped curve at parameter t.
func (c Config) sample(t float64) (x, y float64) {
	switch c.Type {
	case Rose:
		rad := c.A * math.Cos(c.K*t)
		return rad * math.Cos(t), rad * math.Sin(t)
	case Hypotrochoid:
		diff := c.R - c.SmallR
		w := diff / c.SmallR * t
		return diff*math.Cos(t) + c.D*math.Cos(w), diff*math.Sin(t) - c.D*math.Sin(w)
	default:
		sum := c.R + c.SmallR
		w := sum / c.SmallR * t
		return sum*math.Cos(t) - c.D*math.Cos(w), sum*math.Sin(t) - c.D*math.Sin(w)
	}
}
