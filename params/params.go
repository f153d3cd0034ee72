// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package params holds the belief solver's scalar tunables: the prior
// sample count assigned to a new source, the prior probability that an
// unevidenced source is correct, and the scale of the logarithmic vote
// weight transform. See solver for how they're consumed.
package params

import "fmt"

// Names recognized by CONFIGURE. These are the only strings SetByName
// accepts.
const (
	NameInitialSourceStrength = "initial_source_strength"
	NameDefaultSourceQuality  = "default_source_quality"
	NameLogWeightFactor       = "log_weight_factor"
)

// Defaults from spec §4.1.
const (
	DefaultInitialSourceStrength = 10.0
	DefaultDefaultSourceQuality  = 0.1
	DefaultLogWeightFactor       = 100.0

	// DefaultMaxIterations is the solver's build-time iteration cap. It is
	// not reachable from CONFIGURE: it is set at construction time, through
	// Builder.WithMaxIterations or the maxIterations key of a FromYAML
	// document.
	DefaultMaxIterations = 50
)

// Params are the belief solver's tunables. A zero Params is not valid;
// use Default or a Builder.
type Params struct {
	InitialSourceStrength float64 `json:"initialSourceStrength" yaml:"initialSourceStrength"`
	DefaultSourceQuality  float64 `json:"defaultSourceQuality" yaml:"defaultSourceQuality"`
	LogWeightFactor       float64 `json:"logWeightFactor" yaml:"logWeightFactor"`
	MaxIterations         int     `json:"maxIterations" yaml:"maxIterations"`
}

// Default returns the spec's default parameter set.
func Default() Params {
	return Params{
		InitialSourceStrength: DefaultInitialSourceStrength,
		DefaultSourceQuality:  DefaultDefaultSourceQuality,
		LogWeightFactor:       DefaultLogWeightFactor,
		MaxIterations:         DefaultMaxIterations,
	}
}

// Valid reports whether p satisfies spec §4.1/§6's bounds.
func (p Params) Valid() error {
	switch {
	case p.InitialSourceStrength < 0:
		return ErrNegativeStrength
	case p.DefaultSourceQuality < 0 || p.DefaultSourceQuality > 1:
		return ErrQualityOutOfRange
	case p.LogWeightFactor <= 0:
		return ErrNonPositiveLogWeightFactor
	case p.MaxIterations <= 0:
		return ErrNonPositiveMaxIterations
	}
	return nil
}

// SetByName updates the single named tunable to value, validating it in
// isolation. It is the implementation behind the CONFIGURE command; it
// never touches MaxIterations, which is not CONFIGURE-able (spec §5).
func (p *Params) SetByName(name string, value float64) error {
	switch name {
	case NameInitialSourceStrength:
		if value < 0 {
			return ErrNegativeStrength
		}
		p.InitialSourceStrength = value
	case NameDefaultSourceQuality:
		if value < 0 || value > 1 {
			return ErrQualityOutOfRange
		}
		p.DefaultSourceQuality = value
	case NameLogWeightFactor:
		if value <= 0 {
			return ErrNonPositiveLogWeightFactor
		}
		p.LogWeightFactor = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}
