package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"demo values", 2, 3, 5},
		{"negative operand", -2, 3, 1},
		{"both negative", -2, -3, -5},
		{"zero identity", 7, 0, 7},
		{"wraparound at max", math.MaxInt64, 1, math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"positive result", 5, 3, 2},
		{"negative result", 3, 5, -2},
		{"zero identity", 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(tt.a, tt.b))
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"demo values", 4, 5, 20},
		{"negative operand", -4, 5, -20},
		{"both negative", -4, -5, 20},
		{"zero annihilates", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Multiply(tt.a, tt.b))
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"exact", 20, 5, 4},
		{"truncates toward zero", 7, 2, 3},
		{"negative truncates toward zero", -7, 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	_, err := Divide(7, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
}
