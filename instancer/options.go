// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// options.go - functional options for Run / Compute / MengerSponge.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • The expansion itself never panics and never fails.

package instancer

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfractal/arrangement"
)

// Option customizes an expansion.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	limit   int
	arrOpts []arrangement.Option
}

func newOptions(opts ...Option) options {
	o := options{
		logger: zap.NewNop(),
		limit:  MaxInstances,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes budget and fallback diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("instancer: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithInstanceBudget lowers the leaf ceiling below MaxInstances.
// Panics unless 1 ≤ n ≤ MaxInstances.
func WithInstanceBudget(n int) Option {
	if n < 1 || n > MaxInstances {
		panic("instancer: WithInstanceBudget(n) requires 1 ≤ n ≤ MaxInstances")
	}
	return func(o *options) {
		o.limit = n
	}
}

// WithSeed makes the Random arrangement reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.arrOpts = append(o.arrOpts, arrangement.WithSeed(seed))
	}
}

// WithRand supplies the RNG for the Random arrangement.
func WithRand(r *rand.Rand) Option {
	opt := arrangement.WithRand(r)
	return func(o *options) {
		o.arrOpts = append(o.arrOpts, opt)
	}
}
