// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import "errors"

var (
	// ErrUnknownParameter is returned when CONFIGURE names a tunable the
	// engine does not recognize.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrNegativeStrength guards initial_source_strength < 0.
	ErrNegativeStrength = errors.New("initial_source_strength must be >= 0")

	// ErrQualityOutOfRange guards default_source_quality outside [0,1].
	ErrQualityOutOfRange = errors.New("default_source_quality must be in [0,1]")

	// ErrNonPositiveLogWeightFactor guards log_weight_factor <= 0.
	ErrNonPositiveLogWeightFactor = errors.New("log_weight_factor must be > 0")

	// ErrNonPositiveMaxIterations guards a non-positive iteration cap.
	ErrNonPositiveMaxIterations = errors.New("max_iterations must be > 0")
)
