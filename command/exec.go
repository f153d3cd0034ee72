// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"errors"

	"github.com/luxfi/log"

	"github.com/waoai/confidis/graph"
	"github.com/waoai/confidis/metrics"
	"github.com/waoai/confidis/params"
	"github.com/waoai/confidis/solver"
)

// Dispatch executes cmd against s and p, running the solver as needed
// for Get and reporting to m and lg. It returns a non-nil *solver.
// Result only for Get; every other command returns (nil, nil) on
// success. Dispatch is the only place command-level errors (as opposed
// to parse errors) are produced.
func Dispatch(s *graph.Store, p *params.Params, m *metrics.Metrics, lg log.Logger, cmd Command) (*solver.Result, error) {
	switch c := cmd.(type) {
	case Configure:
		if err := p.SetByName(c.Name, c.Value); err != nil {
			if errors.Is(err, params.ErrUnknownParameter) {
				return nil, newError(UnknownParameter, err.Error())
			}
			return nil, newError(OutOfRange, err.Error())
		}
		m.Commands.WithLabelValues("CONFIGURE", "ok").Inc()
		return nil, nil

	case Believe:
		s.MarkTrusted(c.Source)
		m.Commands.WithLabelValues("BELIEVE", "ok").Inc()
		return nil, nil

	case Set:
		s.Submit(c.Source, c.Question, c.Answer)
		m.Commands.WithLabelValues("SET", "ok").Inc()
		return nil, nil

	case Get:
		qh, ok := s.LookupQuestion(c.Question)
		if !ok {
			m.Commands.WithLabelValues("GET", "error").Inc()
			return nil, newError(NoSubmissions, "no submissions for question: "+c.Question)
		}
		solver.Solve(s, *p, m, lg)
		answer, confidence, ok := s.Question(qh).Answer()
		if !ok {
			// Every submission-bearing question solves to a non-Dirty
			// state; reaching this would mean Solve left work undone.
			m.Commands.WithLabelValues("GET", "error").Inc()
			return nil, newError(NoSubmissions, "no submissions for question: "+c.Question)
		}
		m.Commands.WithLabelValues("GET", "ok").Inc()
		return &solver.Result{Answer: answer, Confidence: confidence}, nil

	default:
		return nil, newError(ParseError, "unrecognized command")
	}
}
