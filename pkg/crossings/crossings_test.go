package crossings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/precision"
)

var ctx = precision.MustEpsilon(1e-10)

func seg(t *testing.T, x1, y1, x2, y2 float64) *twod.SubLine {
	t.Helper()
	s, err := twod.SegmentFromPoints(twod.Pt(x1, y1), twod.Pt(x2, y2), ctx)
	require.NoError(t, err)
	return s
}

func TestGrid(t *testing.T) {
	horizontal := []*twod.SubLine{
		seg(t, -1, 0, 3, 0),
		seg(t, -1, 1, 3, 1),
		seg(t, -1, 2, 3, 2),
	}
	idx, err := NewIndex(ctx, horizontal...)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	for _, x := range []float64{0, 1, 2} {
		hits, err := idx.Query(seg(t, x, -1, x, 3), true)
		require.NoError(t, err)
		require.Len(t, hits, 3, "vertical at x=%v", x)
		for i, h := range hits {
			assert.Equal(t, i, h.Index)
			assert.InDelta(t, x, h.Point.X, 1e-9)
			assert.InDelta(t, float64(i), h.Point.Y, 1e-9)
		}
	}

	hits, err := idx.Query(seg(t, 5, -1, 5, 3), false)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStrictEndpoints(t *testing.T) {
	idx, err := NewIndex(ctx, seg(t, 0, 0, 2, 0))
	require.NoError(t, err)

	touching := seg(t, 1, 0, 1, 2)
	hits, err := idx.Query(touching, false)
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = idx.Query(touching, true)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestUnboundedSubLines(t *testing.T) {
	l, err := twod.LineFromPoints(twod.Pt(0, 0.5), twod.Pt(1, 0.5), ctx)
	require.NoError(t, err)

	sq, err := twod.Rectangle(ctx, twod.Pt(-1, -1), twod.Pt(1, 1))
	require.NoError(t, err)
	var edges []*twod.SubLine
	for _, s := range sq.Segments() {
		edges = append(edges, s.SubLine())
	}

	idx, err := NewIndex(ctx, edges...)
	require.NoError(t, err)
	hits, err := idx.Query(l.WholeLine(), true)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	// An unbounded indexed sub-line is found by any query.
	idx, err = NewIndex(ctx, l.WholeLine())
	require.NoError(t, err)
	hits, err = idx.Query(seg(t, 7, -3, 7, 3), true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 7.0, hits[0].Point.X, 1e-9)
	assert.InDelta(t, 0.5, hits[0].Point.Y, 1e-9)
}

func TestBetween(t *testing.T) {
	a, err := twod.Rectangle(ctx, twod.Pt(0, 0), twod.Pt(1, 1))
	require.NoError(t, err)
	b, err := twod.Rectangle(ctx, twod.Pt(0.5, 0.5), twod.Pt(1.5, 1.5))
	require.NoError(t, err)

	points, err := Between(a, b, true)
	require.NoError(t, err)
	require.Len(t, points, 2)
	for _, p := range points {
		onA := p.Eq(twod.Pt(1, 0.5), ctx)
		onB := p.Eq(twod.Pt(0.5, 1), ctx)
		assert.True(t, onA || onB, "unexpected crossing %v", p)
	}

	far, err := twod.Rectangle(ctx, twod.Pt(5, 5), twod.Pt(6, 6))
	require.NoError(t, err)
	points, err = Between(a, far, false)
	require.NoError(t, err)
	assert.Empty(t, points)
}
