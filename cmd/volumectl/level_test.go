package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	valid := []struct {
		in   string
		want float32
	}{
		{"0", 0},
		{"1", 1},
		{"0.4", 0.4},
		{" .25 ", 0.25},
		{"40%", 0.4},
		{"100%", 1},
		{"0%", 0},
		{"12.5 %", 0.125},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	for _, in := range []string{"", "%", "-0.1", "1.01", "101%", "loud", "NaN", "Inf"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseLevel(in)
			assert.ErrorIs(t, err, InvalidLevelError)
		})
	}
}
