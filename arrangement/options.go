// SPDX-License-Identifier: MIT
// Package: lvfractal/arrangement
//
// options.go - functional options for Positions / Resolve.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil RNG).
//   • Determinism is explicit: only WithSeed / WithRand make Random reproducible.
//   • Options never affect deterministic arrangements.

package arrangement

import "math/rand"

// Option customizes resolution by mutating a config before use.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	// rng drives the Random arrangement; nil means the process-wide source.
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies the RNG used by the Random arrangement.
// A *rand.Rand is not goroutine-safe; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("arrangement: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes the Random arrangement reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// uniform returns a [0,1) sampler bound to the configured source.
func (c config) uniform() func() float64 {
	if c.rng != nil {
		return c.rng.Float64
	}
	return rand.Float64
}
