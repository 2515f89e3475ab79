package engine

import (
	"math"
	"testing"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bspgeom/pkg/precision"
	"github.com/chazu/bspgeom/pkg/scene"
)

// run evaluates source in a fresh sandbox and returns the value of the last
// expression along with the scene it populated.
func run(t *testing.T, source string) (zygo.Sexp, *scene.Scene) {
	t.Helper()
	s := scene.New(precision.MustEpsilon(1e-10))
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, s)
	require.NoError(t, env.LoadString(preprocessSource(source)))
	v, err := env.Run()
	require.NoError(t, err)
	return v, s
}

// runErr evaluates source and returns the evaluation error.
func runErr(t *testing.T, source string) error {
	t.Helper()
	s := scene.New(precision.MustEpsilon(1e-10))
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, s)
	if err := env.LoadString(preprocessSource(source)); err != nil {
		return err
	}
	_, err := env.Run()
	return err
}

func number(t *testing.T, v zygo.Sexp) float64 {
	t.Helper()
	f, err := toFloat64(v)
	require.NoError(t, err)
	return f
}

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(intersect a b :strict true)`,
			expect: `(intersect a b "__kw_strict" true)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"say \"a-b\"" check-point`,
			expect: `"say \"a-b\"" check_point`,
		},
		{
			name:   "backtick string preserved",
			input:  "`raw :kw a-b`",
			expect: "`raw :kw a-b`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def a := 10)`,
			expect: `(def a := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(check-point r p)`,
			expect: `(check_point r p)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(vec2 -1 -2.5)`,
			expect: `(vec2 -1 -2.5)`,
		},
		{
			name:   "exponent preserved",
			input:  `1e-10`,
			expect: `1e-10`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:neg-inf`,
			expect: `"__kw_neg-inf"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Argument parsing
// ---------------------------------------------------------------------------

func TestParseArgs(t *testing.T) {
	args := []zygo.Sexp{
		&zygo.SexpStr{S: "pos"},
		&zygo.SexpStr{S: kwPrefix + "strict"},
		&zygo.SexpBool{Val: false},
		&zygo.SexpStr{S: kwPrefix + "inf"},
		&zygo.SexpStr{S: kwPrefix + "flag"},
	}
	pa := parseArgs(args)
	assert.Len(t, pa.positional, 2)
	strict, err := toBool(pa.kw["strict"])
	require.NoError(t, err)
	assert.False(t, strict)
	flag, err := toBool(pa.kw["flag"])
	require.NoError(t, err)
	assert.True(t, flag)
}

// ---------------------------------------------------------------------------
// Points and lines
// ---------------------------------------------------------------------------

func TestPointAccessors(t *testing.T) {
	v, _ := run(t, `(point-x (vec2 3 4))`)
	assert.Equal(t, 3.0, number(t, v))

	v, _ = run(t, `(point-y (vec2 3 4.5))`)
	assert.Equal(t, 4.5, number(t, v))
}

func TestVec2ArgumentErrors(t *testing.T) {
	assert.Error(t, runErr(t, `(vec2 1)`))
	assert.Error(t, runErr(t, `(vec2 "a" 1)`))
}

// ---------------------------------------------------------------------------
// Regions
// ---------------------------------------------------------------------------

func TestRegionMeasures(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   float64
	}{
		{"rectangle area", `(area (rectangle (vec2 0 0) (vec2 2 3)))`, 6},
		{"rectangle perimeter", `(perimeter (rectangle (vec2 0 0) (vec2 2 3)))`, 10},
		{"convex triangle", `(area (convex (vec2 0 0) (vec2 4 0) (vec2 0 3)))`, 6},
		{"vertex list", `(area (convex (list (vec2 0 0) (vec2 1 0) (vec2 1 1) (vec2 0 1))))`, 1},
		{"l-shape", `(area (polygon (vec2 0 0) (vec2 2 0) (vec2 2 1) (vec2 1 1) (vec2 1 2) (vec2 0 2)))`, 3},
		{"union", `(area (union (rectangle (vec2 0 0) (vec2 1 1)) (rectangle (vec2 0.5 0.5) (vec2 1.5 1.5))))`, 1.75},
		{"intersection", `(area (intersection (rectangle (vec2 0 0) (vec2 1 1)) (rectangle (vec2 0.5 0.5) (vec2 1.5 1.5))))`, 0.25},
		{"difference", `(area (difference (rectangle (vec2 0 0) (vec2 1 1)) (rectangle (vec2 0.5 0.5) (vec2 1.5 1.5))))`, 0.75},
		{"xor", `(area (xor (rectangle (vec2 0 0) (vec2 1 1)) (rectangle (vec2 0.5 0.5) (vec2 1.5 1.5))))`, 1.5},
		{"hole", `(area (difference (rectangle (vec2 0 0) (vec2 4 4)) (rectangle (vec2 1 1) (vec2 3 3))))`, 12},
		{"empty", `(area (empty-region))`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := run(t, tt.source)
			assert.InDelta(t, tt.want, number(t, v), 1e-9)
		})
	}
}

func TestUnboundedArea(t *testing.T) {
	v, _ := run(t, `(area (halfplane (vec2 0 0) (vec2 1 0)))`)
	assert.True(t, math.IsInf(number(t, v), 1))

	v, _ = run(t, `(area (complement (rectangle (vec2 0 0) (vec2 1 1))))`)
	assert.True(t, math.IsInf(number(t, v), 1))

	v, _ = run(t, `(area (full-plane))`)
	assert.True(t, math.IsInf(number(t, v), 1))
}

func TestCheckPoint(t *testing.T) {
	tests := []struct {
		point string
		want  string
	}{
		{"(vec2 0.5 0.5)", "inside"},
		{"(vec2 2 2)", "outside"},
		{"(vec2 1 0.5)", "boundary"},
	}
	for _, tt := range tests {
		t.Run(tt.point, func(t *testing.T) {
			v, _ := run(t, `(check-point (rectangle (vec2 0 0) (vec2 1 1)) `+tt.point+`)`)
			str, err := toString(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, str)
		})
	}
}

func TestHalfplaneLeftSide(t *testing.T) {
	v, _ := run(t, `(check-point (halfplane (line (vec2 0 0) (vec2 1 0))) (vec2 0 1))`)
	str, _ := toString(v)
	assert.Equal(t, "inside", str)
}

func TestSetOperandErrors(t *testing.T) {
	assert.Error(t, runErr(t, `(union)`))
	assert.Error(t, runErr(t, `(difference (full-plane))`))
	assert.Error(t, runErr(t, `(xor (full-plane) (interval 0 1))`))
	assert.Error(t, runErr(t, `(union 1)`))
	assert.Error(t, runErr(t, `(convex (vec2 0 0) (vec2 1 0))`))
	assert.Error(t, runErr(t, `(convex (vec2 0 0) (vec2 2 0) (vec2 2 1) (vec2 1 1) (vec2 1 2) (vec2 0 2))`))
}

func TestBoundaryAndCrossings(t *testing.T) {
	v, _ := run(t, `(len (boundary (rectangle (vec2 0 0) (vec2 1 1))))`)
	assert.Equal(t, 4.0, number(t, v))

	v, _ = run(t, `(len (crossings (rectangle (vec2 0 0) (vec2 2 2)) (rectangle (vec2 1 1) (vec2 3 3)) :strict true))`)
	assert.Equal(t, 2.0, number(t, v))
}

// ---------------------------------------------------------------------------
// Interval sets and sub-lines
// ---------------------------------------------------------------------------

func TestIntervals(t *testing.T) {
	v, _ := run(t, `(size (union (interval 0 1) (interval 2 4)))`)
	assert.InDelta(t, 3, number(t, v), 1e-12)

	v, _ = run(t, `(intervals (union (interval 0 1) (interval 0.5 2) (interval 3 4)))`)
	pairs, err := sexpListToSlice(v)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	first, err := sexpListToSlice(pairs[0])
	require.NoError(t, err)
	assert.InDelta(t, 0, number(t, first[0]), 1e-12)
	assert.InDelta(t, 2, number(t, first[1]), 1e-12)

	v, _ = run(t, `(check-point (interval 0 1) 1)`)
	str, _ := toString(v)
	assert.Equal(t, "boundary", str)

	v, _ = run(t, `(size (interval 0 :inf))`)
	assert.True(t, math.IsInf(number(t, v), 1))

	assert.Error(t, runErr(t, `(interval 2 1)`))
	assert.Error(t, runErr(t, `(interval :sideways 1)`))
}

func TestIntersect(t *testing.T) {
	v, _ := run(t, `(intersect (segment (vec2 -1 0) (vec2 1 0)) (segment (vec2 0 -1) (vec2 0 1)))`)
	p, err := toPoint(v)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)

	// touching at an endpoint counts unless strict
	v, _ = run(t, `(intersect (segment (vec2 0 0) (vec2 1 0)) (segment (vec2 0 0) (vec2 0 1)))`)
	_, err = toPoint(v)
	assert.NoError(t, err)

	v, _ = run(t, `(intersect (segment (vec2 0 0) (vec2 1 0)) (segment (vec2 0 0) (vec2 0 1)) :strict true)`)
	assert.Equal(t, zygo.SexpNull, v)

	v, _ = run(t, `(intersect (segment (vec2 0 0) (vec2 1 0)) (segment (vec2 0 1) (vec2 1 1)))`)
	assert.Equal(t, zygo.SexpNull, v)
}

func TestSubLineOperations(t *testing.T) {
	v, _ := run(t, `
(def l (line (vec2 0 0) (vec2 1 0)))
(size (union (span l 0 1) (span l 2 3)))`)
	assert.InDelta(t, 2, number(t, v), 1e-12)

	v, _ = run(t, `
(def l (line (vec2 0 0) (vec2 1 0)))
(size (difference (span l 0 3) (span l 1 2)))`)
	assert.InDelta(t, 2, number(t, v), 1e-12)

	v, _ = run(t, `(size (whole-line (line (vec2 0 0) (vec2 1 1))))`)
	assert.True(t, math.IsInf(number(t, v), 1))

	// sub-lines on different lines do not combine
	assert.Error(t, runErr(t, `(union (segment (vec2 0 0) (vec2 1 0)) (segment (vec2 0 0) (vec2 0 1)))`))
}

// ---------------------------------------------------------------------------
// Named objects
// ---------------------------------------------------------------------------

func TestDefregionAndLookup(t *testing.T) {
	v, s := run(t, `
(defregion "outer" (rectangle (vec2 0 0) (vec2 4 4)))
(defregion "ring" (difference (region "outer") (rectangle (vec2 1 1) (vec2 3 3))))
(defsegment "cut" (segment (vec2 -1 2) (vec2 5 2)))
(area (region "ring"))`)
	assert.InDelta(t, 12, number(t, v), 1e-9)

	require.Equal(t, []string{"outer", "ring", "cut"}, s.Names())
	ring := s.MustLookup("ring")
	assert.Equal(t, scene.KindRegion, ring.Kind)
	assert.Len(t, ring.Region.Loops(), 2)

	cut := s.MustLookup("cut")
	assert.Equal(t, scene.KindSegment, cut.Kind)
	assert.InDelta(t, 6, cut.Sub.Size(), 1e-12)
	assert.InDelta(t, -1, cut.Sub.Segments()[0].Start.X, 1e-12)
}

func TestLookupErrors(t *testing.T) {
	assert.Error(t, runErr(t, `(region "missing")`))
	assert.Error(t, runErr(t, `
(defsegment "s" (segment (vec2 0 0) (vec2 1 0)))
(region "s")`))
	assert.Error(t, runErr(t, `(defregion "r" (vec2 0 0))`))
	assert.Error(t, runErr(t, `(defregion r (full-plane))`))
}

func TestLookupReturnsSegment(t *testing.T) {
	v, _ := run(t, `
(defsegment "s" (segment (vec2 0 0) (vec2 3 0)))
(size (lookup "s"))`)
	assert.InDelta(t, 3, number(t, v), 1e-12)
}
