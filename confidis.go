// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package confidis provides a clean, single-import interface to the
// trust-weighted answer resolver: Execute one protocol line at a time
// against an in-memory belief graph and get back the winning answer
// and its confidence.
package confidis

import (
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/waoai/confidis/command"
	"github.com/waoai/confidis/graph"
	"github.com/waoai/confidis/metrics"
	"github.com/waoai/confidis/params"
)

// Result is one GET ANSWER TO response.
type Result struct {
	Answer     string
	Confidence float64
}

// Error is a structured command failure; see command.Kind for the set
// of Kind values it can carry.
type Error = command.Error

// Re-exported failure kinds, so callers never need to import command
// directly just to compare against them.
const (
	ParseErrorKind       = command.ParseError
	UnknownParameterKind = command.UnknownParameter
	OutOfRangeKind       = command.OutOfRange
	NoSubmissionsKind    = command.NoSubmissions
	ReleasedKind         = command.Released
)

// Engine is one belief graph plus its tunable parameters. It is not
// safe for concurrent use: the protocol is a strictly ordered command
// stream, matching spec §5's single-writer model.
type Engine struct {
	store    *graph.Store
	params   params.Params
	metrics  *metrics.Metrics
	log      log.Logger
	released bool
}

// Option configures a new Engine.
type Option func(*Engine)

// WithParams seeds the engine with p instead of params.Default().
func WithParams(p params.Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithRegisterer registers the engine's Prometheus collectors against
// reg instead of a private, unscraped registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.metrics = metrics.New(reg) }
}

// WithLogger directs the engine's structured logging to lg instead of
// a no-op logger.
func WithLogger(lg log.Logger) Option {
	return func(e *Engine) { e.log = lg }
}

// New returns a ready Engine with an empty graph.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:  graph.NewStore(),
		params: params.Default(),
		log:    log.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.NoOp()
	}
	return e
}

// Execute parses and runs one protocol line (spec §4.4). It returns a
// non-nil *Result only for a successful GET ANSWER TO; every other
// successful command returns (nil, nil). Errors are always *Error.
func (e *Engine) Execute(line string) (*Result, error) {
	if e.released {
		return nil, &Error{Kind: command.Released, Message: "engine has been released"}
	}

	cmd, err := command.Parse(line)
	if err != nil {
		return nil, err
	}

	res, err := command.Dispatch(e.store, &e.params, e.metrics, e.log, cmd)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return &Result{Answer: res.Answer, Confidence: res.Confidence}, nil
}

// Stats returns the current graph size.
func (e *Engine) Stats() graph.Stats {
	return e.store.Stats()
}

// Release marks the engine terminal; every subsequent Execute fails
// with the Released kind (spec §3: "Terminal on engine teardown").
func (e *Engine) Release() {
	e.released = true
}
