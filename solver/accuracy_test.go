// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package solver

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/waoai/confidis/graph"
	"github.com/waoai/confidis/metrics"
	"github.com/waoai/confidis/params"
)

// TestAccuracyBeatsPluralityVoting is spec §8 property 6. Half the
// population are adversarial sources that are always wrong (they know
// the true answer and deliberately avoid it, spread uniformly across
// the other tokens so they don't collude on a single decoy), and half
// are 75%-accurate. Over many trials, the engine's per-question
// accuracy must strictly exceed plain, unweighted plurality's.
func TestAccuracyBeatsPluralityVoting(t *testing.T) {
	const (
		trials       = 1000
		goodSources  = 5
		badSources   = 5
		goodAccuracy = 0.75
	)
	tokens := []string{"A", "B", "C", "D"}

	rng := rand.New(rand.NewSource(1))
	s := graph.NewStore()
	p := params.Default()
	m := metrics.NoOp()
	lg := log.NewNoOpLogger()

	truths := make([]string, trials)
	pluralityCounts := make([]map[string]int, trials)

	for i := 0; i < trials; i++ {
		q := fmt.Sprintf("q%d", i)
		truth := tokens[rng.Intn(len(tokens))]
		truths[i] = truth

		wrong := make([]string, 0, len(tokens)-1)
		for _, tok := range tokens {
			if tok != truth {
				wrong = append(wrong, tok)
			}
		}

		counts := map[string]int{}
		for g := 0; g < goodSources; g++ {
			token := truth
			if rng.Float64() >= goodAccuracy {
				token = wrong[rng.Intn(len(wrong))]
			}
			s.Submit(fmt.Sprintf("good%d", g), q, token)
			counts[token]++
		}
		for b := 0; b < badSources; b++ {
			token := wrong[rng.Intn(len(wrong))]
			s.Submit(fmt.Sprintf("bad%d", b), q, token)
			counts[token]++
		}
		pluralityCounts[i] = counts
	}

	Solve(s, p, m, lg)

	engineCorrect, pluralityCorrect := 0, 0
	for i := 0; i < trials; i++ {
		answer, _ := get(t, s, fmt.Sprintf("q%d", i))
		if answer == truths[i] {
			engineCorrect++
		}
		if pluralityWinner(pluralityCounts[i]) == truths[i] {
			pluralityCorrect++
		}
	}

	engineAccuracy := float64(engineCorrect) / trials
	pluralityAccuracy := float64(pluralityCorrect) / trials

	require.Greater(t, engineAccuracy, pluralityAccuracy,
		"engine accuracy %.4f should strictly exceed plurality accuracy %.4f", engineAccuracy, pluralityAccuracy)
}
