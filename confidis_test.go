// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package confidis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineEndToEndScenario(t *testing.T) {
	e := New()

	_, err := e.Execute("BELIEVE t")
	require.NoError(t, err)
	_, err = e.Execute("SET q1 X FROM t")
	require.NoError(t, err)
	_, err = e.Execute("SET q1 Y FROM a")
	require.NoError(t, err)

	result, err := e.Execute("GET ANSWER TO q1")
	require.NoError(t, err)
	require.Equal(t, "X", result.Answer)
}

func TestEngineReturnsStructuredErrors(t *testing.T) {
	e := New()

	_, err := e.Execute("GET ANSWER TO missing")
	require.Error(t, err)
	var cmdErr *Error
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, NoSubmissionsKind, cmdErr.Kind)
}

func TestEngineRejectsCommandsAfterRelease(t *testing.T) {
	e := New()
	e.Release()

	_, err := e.Execute("BELIEVE t")
	require.Error(t, err)
	var cmdErr *Error
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, ReleasedKind, cmdErr.Kind)
}

func TestEngineStatsReflectsGraphSize(t *testing.T) {
	e := New()
	_, err := e.Execute("SET q1 X FROM a")
	require.NoError(t, err)
	_, err = e.Execute("SET q2 Y FROM a")
	require.NoError(t, err)

	stats := e.Stats()
	require.Equal(t, 2, stats.Questions)
	require.Equal(t, 1, stats.Sources)
	require.Equal(t, 2, stats.Submissions)
}
