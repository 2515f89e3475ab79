package oned

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

var ctx = precision.MustEpsilon(1e-10)

func TestOrientedPointOffset(t *testing.T) {
	direct := NewOrientedPoint(Of(2), true, ctx)
	assert.Equal(t, 1.0, direct.Offset(Of(3)))
	assert.Equal(t, partition.Plus, direct.Classify(Of(3)))
	assert.Equal(t, partition.Minus, direct.Classify(Of(1)))
	assert.Equal(t, partition.On, direct.Classify(Of(2+1e-12)))

	reversed := direct.Reversed()
	assert.Equal(t, -1.0, reversed.Offset(Of(3)))
	assert.True(t, direct.SameAs(reversed))
	assert.False(t, direct.SameOrientationAs(reversed))
	assert.Equal(t, Of(2), direct.Project(Of(10)))
}

func TestOrientedPointFromPoints(t *testing.T) {
	h, err := OrientedPointFromPoints(Of(1), Of(4), ctx)
	require.NoError(t, err)
	assert.Equal(t, partition.Plus, h.Classify(Of(4)))

	h, err = OrientedPointFromPoints(Of(1), Of(-4), ctx)
	require.NoError(t, err)
	assert.Equal(t, partition.Plus, h.Classify(Of(-4)))

	_, err = OrientedPointFromPoints(Of(1), Of(1), ctx)
	assert.True(t, errors.Is(err, partition.ErrDegenerateGeometry))
}

func TestSubOrientedPointSplit(t *testing.T) {
	sub := NewOrientedPoint(Of(5), true, ctx).WholeHyperplane()
	tests := []struct {
		name string
		at   float64
		want partition.Side
	}{
		{"cut below", 1, partition.SidePlus},
		{"cut above", 9, partition.SideMinus},
		{"same point", 5, partition.SideHyper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sub.Split(NewOrientedPoint(Of(tt.at), true, ctx)).Side()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubOrientedPointReunite(t *testing.T) {
	a := NewOrientedPoint(Of(5), true, ctx).WholeHyperplane()
	b := NewOrientedPoint(Of(5), false, ctx).WholeHyperplane()
	_, err := a.Reunite(b)
	require.NoError(t, err)

	c := NewOrientedPoint(Of(6), true, ctx).WholeHyperplane()
	_, err = a.Reunite(c)
	assert.True(t, errors.Is(err, partition.ErrIncompatibleHyperplanes))
}
