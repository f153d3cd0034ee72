// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package vote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBagAccumulatesWeight(t *testing.T) {
	b := New[string]()
	b.Add("X", 2.5)
	b.Add("X", 1.5)
	b.Add("Y", 0.5)

	require.Equal(t, 4.0, b.Weight("X"))
	require.Equal(t, 0.5, b.Weight("Y"))
	require.Equal(t, 4.5, b.Total())
	require.Equal(t, 2, b.Len())
}

func TestBagIgnoresNonPositiveWeight(t *testing.T) {
	b := New[string]()
	b.Add("X", 0)
	b.Add("X", -1)
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0.0, b.Total())
}

func TestBagMode(t *testing.T) {
	b := New[string]()
	b.Add("X", 1)
	b.Add("Y", 5)
	b.Add("Z", 2)

	mode, weight := b.Mode()
	require.Equal(t, "Y", mode)
	require.Equal(t, 5.0, weight)
}
