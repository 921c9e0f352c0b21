// SPDX-License-Identifier: MIT

// Package stats derives display statistics for a fractal configuration:
// the copy count N, the similarity ratio r and the similarity dimension
//
//	D = ln N / ln(1/r)
//
// D is reported only when N > 0 and 0 < r < 1; otherwise it is 0. This is a
// value, not an error: an empty rule or a non-shrinking scale simply has no
// meaningful dimension.
//
// Compute is read-only and never draws from the Random arrangement: the copy
// count of every arrangement is known without sampling.
package stats
