// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package xmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"within range", 0.5, 0.5},
		{"below zero", -0.1, 0},
		{"above one", 1.1, 1},
		{"exactly zero", 0, 0},
		{"exactly one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clamp01(tt.v))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		lo, hi float64
		want   float64
	}{
		{"within range", 5, 0, 10, 5},
		{"below lo", -5, 0, 10, 0},
		{"above hi", 15, 0, 10, 10},
		{"negative range", -5, -10, -1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestMax(t *testing.T) {
	require.Equal(t, 3.0, Max(3, 2))
	require.Equal(t, 3.0, Max(2, 3))
	require.Equal(t, 2.0, Max(2, 2))
}

func TestMin(t *testing.T) {
	require.Equal(t, 2.0, Min(3, 2))
	require.Equal(t, 2.0, Min(2, 3))
	require.Equal(t, 2.0, Min(2, 2))
}
