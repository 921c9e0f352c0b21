// SPDX-License-Identifier: MIT
// Package: lvfractal/stats
//
// stats.go - copy count, dimension and descriptions.

package stats

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvfractal/arrangement"
)

const (
	keepsPrefix = "Keeps: "
	keepsNone   = "Keeps: Nothing (Empty)"
)

// Stats summarizes one fractal configuration.
type Stats struct {
	// N is the number of child copies per expansion.
	N int `json:"n"`
	// R is the child scale factor.
	R float64 `json:"r"`
	// D is the similarity dimension, or 0 when undefined.
	D float64 `json:"d"`
	// Name reads "Custom <Geometry> Fractal".
	Name string `json:"name"`
	// Components lists the kept feature categories.
	Components string `json:"components"`
}

// Compute returns the statistics of (g, rule, scale, a). N counts the
// offsets at scale 1, which is the same count as at any other scale.
func Compute(g arrangement.Geometry, rule arrangement.Rule, scale float64, a arrangement.Arrangement) Stats {
	n := arrangement.NewSource(g, rule, 1, a).Count()
	return Stats{
		N:          n,
		R:          scale,
		D:          Dimension(n, scale),
		Name:       Name(g),
		Components: Components(rule),
	}
}

// Dimension returns ln n / ln(1/r) when n > 0 and 0 < r < 1, else 0.
func Dimension(n int, r float64) float64 {
	if n <= 0 || !(r > 0 && r < 1) {
		return 0
	}
	return math.Log(float64(n)) / math.Log(1/r)
}

// Name returns the display name of a geometry, e.g. "Custom Cube Fractal".
func Name(g arrangement.Geometry) string {
	s := g.String()
	if s != "" {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	return "Custom " + s + " Fractal"
}

// Components describes the kept categories, e.g. "Keeps: Vertices, Center".
func Components(rule arrangement.Rule) string {
	kept := rule.Kept()
	if len(kept) == 0 {
		return keepsNone
	}
	return keepsPrefix + strings.Join(kept, ", ")
}
