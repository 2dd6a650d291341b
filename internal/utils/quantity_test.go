package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt32(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int32
	}{
		{"positive unchanged", 42, 42},
		{"zero unchanged", 0, 0},
		{"negative floors to zero", -1, 0},
		{"min int32 floors to zero", math.MinInt32, 0},
		{"max int32 unchanged", math.MaxInt32, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInt32(tt.input))
		})
	}
}

func TestClampInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected int32
	}{
		{"in range", 1000, 1000},
		{"zero", 0, 0},
		{"negative floors to zero", -1, 0},
		{"min int64 floors to zero", math.MinInt64, 0},
		{"just above max int32 saturates", math.MaxInt32 + 10, math.MaxInt32},
		{"max int64 saturates", math.MaxInt64, math.MaxInt32},
		{"max int32 unchanged", math.MaxInt32, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInt64(tt.input))
		})
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  int32
		delta    int32
		expected int32
	}{
		{"simple add", 10, 3, 13},
		{"simple subtract", 10, -3, 7},
		{"zero plus zero", 0, 0, 0},
		{"subtract past zero saturates", 1, -10, 0},
		{"add past max saturates", math.MaxInt32, 10, math.MaxInt32},
		{"max plus max saturates", math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{"min delta on zero saturates", 0, math.MinInt32, 0},
		{"exact drain to zero", 5, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDelta(tt.current, tt.delta)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, int32(0))
		})
	}
}
