// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package graph holds the question and source node tables and the
// submission edges between them, plus each source's trust flag and the
// per-question
// Dirty/Clean/Frozen cache described in spec §3. It does not know how
// to compute an answer — that's solver's job — only how to store and
// mutate the facts a solve pass reads.
package graph

import "github.com/waoai/confidis/intern"

// Store is the engine's graph of questions, sources, and the current
// submission each source has made to each question. A Store is not
// safe for concurrent use, matching the single-threaded command loop
// that owns it.
type Store struct {
	questionIDs *intern.Table
	sourceIDs   *intern.Table

	questions map[QuestionHandle]*Question
	sources   map[SourceHandle]*Source

	// bySource[s][q] and byQuestion[q][s] are two views onto the same
	// edge set, kept in lockstep, so both SubmissionsFor and
	// SubmissionsBy are O(1) lookups followed by an O(k) scan instead
	// of a full edge-table scan.
	byQuestion map[QuestionHandle]map[SourceHandle]string
	bySource   map[SourceHandle]map[QuestionHandle]string
}

// NewStore returns an empty graph.
func NewStore() *Store {
	return &Store{
		questionIDs: intern.NewTable(),
		sourceIDs:   intern.NewTable(),
		questions:   make(map[QuestionHandle]*Question),
		sources:     make(map[SourceHandle]*Source),
		byQuestion:  make(map[QuestionHandle]map[SourceHandle]string),
		bySource:    make(map[SourceHandle]map[QuestionHandle]string),
	}
}

// EnsureQuestion returns the handle for questionID, creating a fresh
// Dirty question node if this is the first time it's been seen.
func (s *Store) EnsureQuestion(questionID string) QuestionHandle {
	h := s.questionIDs.Intern(questionID)
	if _, ok := s.questions[h]; !ok {
		s.questions[h] = &Question{ID: questionID, State: Dirty}
		s.byQuestion[h] = make(map[SourceHandle]string)
	}
	return h
}

// EnsureSource returns the handle for sourceID, creating a fresh
// untrusted source node if this is the first time it's been seen.
func (s *Store) EnsureSource(sourceID string) SourceHandle {
	h := s.sourceIDs.Intern(sourceID)
	if _, ok := s.sources[h]; !ok {
		s.sources[h] = &Source{ID: sourceID}
		s.bySource[h] = make(map[QuestionHandle]string)
	}
	return h
}

// MarkTrusted marks sourceID as trusted, creating it first if needed,
// and moves every question it has already submitted to back to Dirty
// so the next GET re-derives whether it is now Frozen (spec §3: "any
// trust change ... moves affected questions to Dirty").
func (s *Store) MarkTrusted(sourceID string) SourceHandle {
	h := s.EnsureSource(sourceID)
	src := s.sources[h]
	if src.Trusted {
		return h
	}
	src.Trusted = true
	for q := range s.bySource[h] {
		s.questions[q].State = Dirty
	}
	return h
}

// Submit records that source submitted answer for question, creating
// either node as needed, overwriting any prior submission from the
// same source on the same question, and moving the question to Dirty.
func (s *Store) Submit(sourceID, questionID, answer string) (QuestionHandle, SourceHandle) {
	qh := s.EnsureQuestion(questionID)
	sh := s.EnsureSource(sourceID)

	s.byQuestion[qh][sh] = answer
	s.bySource[sh][qh] = answer
	s.questions[qh].State = Dirty
	return qh, sh
}

// SubmissionsFor returns the current submission of every source that
// has submitted to question, keyed by source handle. The returned map
// is owned by the caller; mutating it does not affect the Store.
func (s *Store) SubmissionsFor(q QuestionHandle) map[SourceHandle]string {
	out := make(map[SourceHandle]string, len(s.byQuestion[q]))
	for sh, a := range s.byQuestion[q] {
		out[sh] = a
	}
	return out
}

// SubmissionsBy returns every question source has submitted to, keyed
// by question handle.
func (s *Store) SubmissionsBy(source SourceHandle) map[QuestionHandle]string {
	out := make(map[QuestionHandle]string, len(s.bySource[source]))
	for qh, a := range s.bySource[source] {
		out[qh] = a
	}
	return out
}

// Question returns the question node for h, or nil if h is unknown.
func (s *Store) Question(h QuestionHandle) *Question {
	return s.questions[h]
}

// Source returns the source node for h, or nil if h is unknown.
func (s *Store) Source(h SourceHandle) *Source {
	return s.sources[h]
}

// LookupQuestion returns the handle for an already-seen questionID
// without creating one.
func (s *Store) LookupQuestion(questionID string) (QuestionHandle, bool) {
	return s.questionIDs.Lookup(questionID)
}

// LookupSource returns the handle for an already-seen sourceID without
// creating one.
func (s *Store) LookupSource(sourceID string) (SourceHandle, bool) {
	return s.sourceIDs.Lookup(sourceID)
}

// Cache stores a solved answer and confidence for q and sets its state.
// Callers (solver) must not pass Dirty here; Submit and MarkTrusted are
// what move a question back to Dirty.
func (s *Store) Cache(q QuestionHandle, state State, answer string, confidence float64) {
	qn := s.questions[q]
	qn.State = state
	qn.cachedAnswer = answer
	qn.cachedConfidence = confidence
}

// Questions returns the handles of every known question, in no
// particular order.
func (s *Store) Questions() []QuestionHandle {
	out := make([]QuestionHandle, 0, len(s.questions))
	for h := range s.questions {
		out = append(out, h)
	}
	return out
}

// Sources returns the handles of every known source, in no particular
// order.
func (s *Store) Sources() []SourceHandle {
	out := make([]SourceHandle, 0, len(s.sources))
	for h := range s.sources {
		out = append(out, h)
	}
	return out
}

// AnyDirty reports whether at least one question needs recomputation.
func (s *Store) AnyDirty() bool {
	for _, q := range s.questions {
		if q.State == Dirty {
			return true
		}
	}
	return false
}

// Stats is a point-in-time snapshot of graph size, reported on the
// metrics gauges (SPEC_FULL §4.2).
type Stats struct {
	Questions   int
	Sources     int
	Submissions int
}

// Stats returns the current graph size.
func (s *Store) Stats() Stats {
	subs := 0
	for _, m := range s.byQuestion {
		subs += len(m)
	}
	return Stats{
		Questions:   len(s.questions),
		Sources:     len(s.sources),
		Submissions: subs,
	}
}
