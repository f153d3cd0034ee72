// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureQuestionIsIdempotent(t *testing.T) {
	s := NewStore()
	h1 := s.EnsureQuestion("q1")
	h2 := s.EnsureQuestion("q1")
	require.Equal(t, h1, h2)
	require.Equal(t, Dirty, s.Question(h1).State)
}

func TestSubmitMovesQuestionToDirtyAndOverwrites(t *testing.T) {
	s := NewStore()
	qh, sh := s.Submit("s1", "q1", "X")
	s.Cache(qh, Clean, "X", 0.9)
	require.Equal(t, Clean, s.Question(qh).State)

	s.Submit("s1", "q1", "Y")
	require.Equal(t, Dirty, s.Question(qh).State)

	subs := s.SubmissionsFor(qh)
	require.Len(t, subs, 1)
	require.Equal(t, "Y", subs[sh])
}

func TestMarkTrustedDirtiesExistingSubmissions(t *testing.T) {
	s := NewStore()
	qh, sh := s.Submit("s1", "q1", "X")
	s.Cache(qh, Clean, "X", 0.9)

	s.MarkTrusted("s1")
	require.True(t, s.Source(sh).Trusted)
	require.Equal(t, Dirty, s.Question(qh).State)
}

func TestMarkTrustedIsIdempotent(t *testing.T) {
	s := NewStore()
	h1 := s.MarkTrusted("s1")
	h2 := s.MarkTrusted("s1")
	require.Equal(t, h1, h2)
	require.True(t, s.Source(h1).Trusted)
}

func TestSubmissionsByTracksReverseEdges(t *testing.T) {
	s := NewStore()
	_, sh := s.Submit("s1", "q1", "X")
	s.Submit("s1", "q2", "Y")

	bySource := s.SubmissionsBy(sh)
	require.Len(t, bySource, 2)
}

func TestStatsCountsNodesAndEdges(t *testing.T) {
	s := NewStore()
	s.Submit("s1", "q1", "X")
	s.Submit("s2", "q1", "Y")
	s.Submit("s1", "q2", "X")

	stats := s.Stats()
	require.Equal(t, 2, stats.Questions)
	require.Equal(t, 2, stats.Sources)
	require.Equal(t, 3, stats.Submissions)
}

func TestLookupDoesNotCreate(t *testing.T) {
	s := NewStore()
	_, ok := s.LookupQuestion("missing")
	require.False(t, ok)
	_, ok = s.LookupSource("missing")
	require.False(t, ok)
}
