// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package solver

import (
	"math"
	"sort"

	"github.com/luxfi/log"

	"github.com/waoai/confidis/graph"
	"github.com/waoai/confidis/internal/xmath"
	"github.com/waoai/confidis/metrics"
	"github.com/waoai/confidis/params"
	"github.com/waoai/confidis/vote"
)

// Solve runs the fixed-point relaxation over every question in s,
// recomputing chosen answers and source qualities until no answer
// changes between successive passes or p.MaxIterations is reached. It
// is a no-op if nothing in s is Dirty.
//
// Quality is recomputed from scratch on every call rather than evolved
// incrementally: spec §4.3's update rule is a pure function of
// agreement counts, so recomputing it is both simpler and immune to
// drift from a stale running estimate.
func Solve(s *graph.Store, p params.Params, m *metrics.Metrics, lg log.Logger) {
	if !s.AnyDirty() {
		return
	}

	questions := s.Questions()
	sources := s.Sources()

	quality := make(map[graph.SourceHandle]float64, len(sources))
	for _, sh := range sources {
		src := s.Source(sh)
		if src.Trusted {
			quality[sh] = 1.0
		} else {
			quality[sh] = p.DefaultSourceQuality
		}
	}

	chosen := make(map[graph.QuestionHandle]string, len(questions))
	submissions := make(map[graph.QuestionHandle]map[graph.SourceHandle]string, len(questions))
	for _, qh := range questions {
		submissions[qh] = s.SubmissionsFor(qh)
	}

	iterations := 0
	changed := true
	for changed && iterations < p.MaxIterations {
		iterations++
		changed = false

		for _, qh := range questions {
			answer, _ := pickWinner(submissions[qh], quality, s, p)
			if chosen[qh] != answer {
				changed = true
			}
			chosen[qh] = answer
		}

		for _, sh := range sources {
			src := s.Source(sh)
			if src.Trusted {
				continue
			}
			agreements, total := 0.0, 0.0
			for qh, token := range s.SubmissionsBy(sh) {
				total++
				if chosen[qh] == token {
					agreements++
				}
			}
			quality[sh] = xmath.Clamp01(
				(p.InitialSourceStrength*p.DefaultSourceQuality + agreements) / (p.InitialSourceStrength + total),
			)
		}
	}

	if changed {
		m.IterationCap.Inc()
		lg.Warn("belief solver hit the iteration cap without reaching a fixed point", "iterations", iterations)
	}
	m.Iterations.Observe(float64(iterations))

	for _, qh := range questions {
		subs := submissions[qh]
		answer, confidence := pickWinner(subs, quality, s, p)
		frozen := hasTrustedSubmission(subs, s)

		if prevAnswer, _, ok := s.Question(qh).Answer(); ok && prevAnswer != answer {
			m.AnswerFlips.Inc()
		}

		state := graph.Clean
		if frozen {
			state = graph.Frozen
		}
		s.Cache(qh, state, answer, confidence)
	}

	for _, sh := range sources {
		src := s.Source(sh)
		src.Quality = quality[sh]
		if src.Trusted {
			src.Strength = math.Inf(1)
		} else {
			src.Strength = p.InitialSourceStrength + float64(len(s.SubmissionsBy(sh)))
		}
	}

	m.Questions.Set(float64(len(questions)))
	m.Sources.Set(float64(len(sources)))
	stats := s.Stats()
	m.Submissions.Set(float64(stats.Submissions))
}

func weightOf(sh graph.SourceHandle, quality map[graph.SourceHandle]float64, s *graph.Store, p params.Params) float64 {
	if s.Source(sh).Trusted {
		return trustedWeight
	}
	q := quality[sh]
	return xmath.Max(0, p.LogWeightFactor*math.Log(1+q*p.LogWeightFactor))
}

func hasTrustedSubmission(subs map[graph.SourceHandle]string, s *graph.Store) bool {
	for sh := range subs {
		if s.Source(sh).Trusted {
			return true
		}
	}
	return false
}

// pickWinner returns the winning answer token and its confidence
// (normalized weight share). Ties, and the all-zero-weight fallback to
// unweighted plurality, are both broken by lexicographic order of the
// token, per spec §4.3.
func pickWinner(subs map[graph.SourceHandle]string, quality map[graph.SourceHandle]float64, s *graph.Store, p params.Params) (string, float64) {
	bag := vote.New[string]()
	for sh, token := range subs {
		bag.Add(token, weightOf(sh, quality, s, p))
	}

	if bag.Total() == 0 {
		counts := map[string]int{}
		for _, token := range subs {
			counts[token]++
		}
		return pluralityWinner(counts), 0
	}

	tokens := bag.List()
	sort.Strings(tokens)

	var winner string
	var best float64
	first := true
	for _, token := range tokens {
		w := bag.Weight(token)
		if first || w > best {
			winner, best = token, w
			first = false
		}
	}
	return winner, best / bag.Total()
}

func pluralityWinner(counts map[string]int) string {
	tokens := make([]string, 0, len(counts))
	for t := range counts {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	var winner string
	best := -1
	for _, token := range tokens {
		if counts[token] > best {
			winner, best = token, counts[token]
		}
	}
	return winner
}
