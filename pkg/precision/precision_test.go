package precision

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEpsilon(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"small", 1e-10, false},
		{"large", 10, false},
		{"negative", -1e-3, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewEpsilon(tt.eps)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.eps, c.Epsilon())
		})
	}
}

func TestMustEpsilonPanics(t *testing.T) {
	assert.Panics(t, func() { MustEpsilon(-1) })
	assert.NotPanics(t, func() { MustEpsilon(1e-6) })
}

func TestCompare(t *testing.T) {
	c := MustEpsilon(1e-3)
	tests := []struct {
		a, b float64
		want Ordering
	}{
		{1, 1, Equal},
		{1, 1 + 5e-4, Equal},
		{1, 1.01, Less},
		{1.01, 1, Greater},
		{math.NaN(), 1, Greater},
		{1, math.NaN(), Greater},
		{math.NaN(), math.NaN(), Greater},
		{math.Inf(1), math.Inf(1), Equal},
		{math.Inf(-1), 0, Less},
	}
	for _, tt := range tests {
		if got := c.Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	c := MustEpsilon(0.1)

	assert.True(t, c.Eq(1, 1.05))
	assert.True(t, c.EqZero(-0.05))
	assert.False(t, c.EqZero(0.2))

	assert.True(t, c.Lt(1, 1.2))
	assert.False(t, c.Lt(1, 1.05))
	assert.True(t, c.Lte(1, 1.05))
	assert.True(t, c.Gt(1.2, 1))
	assert.False(t, c.Gt(1.05, 1))
	assert.True(t, c.Gte(1.05, 1))

	assert.Equal(t, 0, c.Sign(0.05))
	assert.Equal(t, 1, c.Sign(0.5))
	assert.Equal(t, -1, c.Sign(-0.5))
}

func TestExactZeroValue(t *testing.T) {
	var c Context
	assert.True(t, c.Eq(1, 1))
	assert.False(t, c.Eq(1, math.Nextafter(1, 2)))
	assert.Equal(t, 0.0, c.Epsilon())
}

func TestEqualityIsNotTransitive(t *testing.T) {
	c := MustEpsilon(1)
	assert.True(t, c.Eq(0, 1))
	assert.True(t, c.Eq(1, 2))
	assert.False(t, c.Eq(0, 2))
}
