// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package graph

import "github.com/waoai/confidis/intern"

// QuestionHandle and SourceHandle are dense references into a Store's
// interning tables, the way the teacher's consensus nodes are keyed by
// ids.NodeID rather than by the strings a client typed.
type (
	QuestionHandle = intern.Handle
	SourceHandle   = intern.Handle
)

// State is a question's position in the Dirty/Clean/Frozen lifecycle
// (spec §3).
type State uint8

const (
	// Dirty questions have submissions or trust changes not yet folded
	// into a cached answer; the next GET must recompute.
	Dirty State = iota
	// Clean questions have a cached answer consistent with the current
	// graph; nothing has changed since it was computed.
	Clean
	// Frozen questions have at least one trusted source's submission, whose
	// weight outvotes every untrusted submission. A later SET still moves
	// the question back to Dirty; a new submission from a trusted source
	// can change the answer, untrusted ones cannot.
	Frozen
)

func (s State) String() string {
	switch s {
	case Dirty:
		return "dirty"
	case Clean:
		return "clean"
	case Frozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Question is a node in the graph's question table.
type Question struct {
	ID    string
	State State

	// cachedAnswer and cachedConfidence hold the solver's last result
	// for this question. They are meaningless while State is Dirty.
	cachedAnswer     string
	cachedConfidence float64
}

// Answer returns the question's memoized answer and confidence, and
// whether the cache is usable (State != Dirty).
func (q *Question) Answer() (answer string, confidence float64, ok bool) {
	if q.State == Dirty {
		return "", 0, false
	}
	return q.cachedAnswer, q.cachedConfidence, true
}

// Source is a node in the graph's source table.
type Source struct {
	ID      string
	Trusted bool

	// Quality and Strength are the solver's last fixed-point estimate
	// for this source. Trusted sources report Quality 1 and an infinite
	// Strength; solver marks a question Frozen from the Trusted flag of
	// its submitters, not from these fields.
	Quality  float64
	Strength float64
}
