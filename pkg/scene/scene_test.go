package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/precision"
)

var ctx = precision.MustEpsilon(1e-10)

func square(t *testing.T, x0, y0, x1, y1 float64) twod.Region {
	t.Helper()
	r, err := twod.Rectangle(ctx, twod.Pt(x0, y0), twod.Pt(x1, y1))
	require.NoError(t, err)
	return r
}

func segment(t *testing.T, x0, y0, x1, y1 float64) *twod.SubLine {
	t.Helper()
	s, err := twod.SegmentFromPoints(twod.Pt(x0, y0), twod.Pt(x1, y1), ctx)
	require.NoError(t, err)
	return s
}

func TestNewScene(t *testing.T) {
	s := New(ctx)
	if s.Len() != 0 {
		t.Errorf("empty scene should have 0 objects, got %d", s.Len())
	}
	if s.Lookup("anything") != nil {
		t.Error("Lookup on an empty scene should return nil")
	}
	if s.Precision().Epsilon() != 1e-10 {
		t.Errorf("epsilon = %g, want 1e-10", s.Precision().Epsilon())
	}
}

func TestDefineAndLookup(t *testing.T) {
	s := New(ctx)
	s.DefineRegion("sq", square(t, 0, 0, 1, 1))
	s.DefineSegment("diag", segment(t, 0, 0, 1, 1))

	sq := s.Lookup("sq")
	require.NotNil(t, sq)
	assert.Equal(t, KindRegion, sq.Kind)
	assert.Equal(t, 0, sq.Order)
	assert.InDelta(t, 1.0, sq.Region.Size(), 1e-12)

	diag := s.MustLookup("diag")
	assert.Equal(t, KindSegment, diag.Kind)
	assert.Equal(t, 1, diag.Order)

	assert.Equal(t, []string{"sq", "diag"}, s.Names())
	assert.Len(t, s.Regions(), 1)
	assert.Len(t, s.Segments(), 1)
	assert.Panics(t, func() { s.MustLookup("missing") })
}

func TestRedefinitionKeepsOrder(t *testing.T) {
	s := New(ctx)
	s.DefineRegion("a", square(t, 0, 0, 1, 1))
	s.DefineRegion("b", square(t, 0, 0, 2, 2))
	s.DefineRegion("a", square(t, 0, 0, 3, 3))

	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.InDelta(t, 9.0, s.MustLookup("a").Region.Size(), 1e-9)
	assert.Equal(t, 0, s.MustLookup("a").Order)

	res := Validate(s)
	assert.True(t, res.OK())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "a", res.Warnings[0].Name)
}

func TestObjectsIsACopy(t *testing.T) {
	s := New(ctx)
	s.DefineRegion("a", square(t, 0, 0, 1, 1))
	objs := s.Objects()
	objs[0] = nil
	assert.NotNil(t, s.Lookup("a"))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRegion, "region"},
		{KindSegment, "segment"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	s := New(ctx)
	sq := s.DefineRegion("sq", square(t, 0, 0, 2, 2))
	empty := s.DefineRegion("none", twod.Empty(ctx))
	full := s.DefineRegion("all", twod.Full(ctx))
	seg := s.DefineSegment("s", segment(t, 0, 0, 5, 0))

	assert.True(t, strings.HasPrefix(sq.Summary(), `region "sq": area=`))
	assert.True(t, strings.HasSuffix(sq.Summary(), "loops=1"))
	assert.Equal(t, `region "none": empty`, empty.Summary())
	assert.Contains(t, full.Summary(), "unbounded")
	assert.Contains(t, seg.Summary(), "length=5")
}

func TestSummaryWithoutSubLine(t *testing.T) {
	s := New(ctx)
	o := s.DefineSegment("bare", nil)

	assert.NotPanics(t, func() { o.Summary() })
	assert.Equal(t, `segment "bare": no sub-line`, o.Summary())

	res := Validate(s)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "no sub-line")
}

func TestCrossings(t *testing.T) {
	s := New(ctx)
	s.DefineSegment("h", segment(t, -1, 0, 1, 0))
	s.DefineSegment("v", segment(t, 0, -1, 0, 1))
	s.DefineSegment("far", segment(t, 5, 5, 6, 6))
	s.DefineRegion("ignored", square(t, -2, -2, 2, 2))

	got, err := s.Crossings(true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h", got[0].A)
	assert.Equal(t, "v", got[0].B)
	assert.InDelta(t, 0, got[0].Point.X, 1e-12)
	assert.InDelta(t, 0, got[0].Point.Y, 1e-12)
}

func TestCrossingsEmptyScene(t *testing.T) {
	got, err := New(ctx).Crossings(false)
	require.NoError(t, err)
	assert.Empty(t, got)
}
