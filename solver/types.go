// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package solver implements the belief solver: the iterative
// relaxation that reassigns source quality and recomputes each
// question's chosen answer until the graph reaches a fixed point (spec
// §4.3). It reads and writes a graph.Store directly; it owns no state
// of its own between calls.
package solver

// trustedWeight is the vote weight assigned to a trusted source's
// submission. It must dominate the largest weight any untrusted source
// can produce, which is bounded by log_weight_factor*log(1+log_weight_factor)
// for any finite log_weight_factor a CONFIGURE command can set.
const trustedWeight = 1e18

// Result is one question's solved answer.
type Result struct {
	Answer     string
	Confidence float64
}
