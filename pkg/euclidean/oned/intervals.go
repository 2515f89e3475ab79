package oned

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Interval is a closed interval of the real line. Either end may be
// infinite.
type Interval struct {
	Inf float64
	Sup float64
}

// Size returns the length of the interval.
func (i Interval) Size() float64 {
	return i.Sup - i.Inf
}

// Midpoint returns the center of the interval, infinite or NaN when the
// interval is unbounded.
func (i Interval) Midpoint() float64 {
	return 0.5 * (i.Inf + i.Sup)
}

// CheckPoint classifies x against the interval within tolerance.
func (i Interval) CheckPoint(x float64, ctx precision.Context) partition.Location {
	if ctx.Eq(x, i.Inf) || ctx.Eq(x, i.Sup) {
		return partition.Boundary
	}
	if x > i.Inf && x < i.Sup {
		return partition.Inside
	}
	return partition.Outside
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Inf, i.Sup)
}

// IntervalSet is a region of the real line: a union of disjoint intervals
// stored as a BSP tree of oriented points.
type IntervalSet struct {
	region    partition.Region[Point]
	precision precision.Context
}

// NewIntervalSet returns the set [lower, upper]. Infinite bounds leave that
// side open; NaN bounds or lower > upper give the empty set.
func NewIntervalSet(lower, upper float64, ctx precision.Context) IntervalSet {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return EmptySet(ctx)
	}
	var hs []partition.Hyperplane[Point]
	if !math.IsInf(lower, -1) {
		hs = append(hs, NewOrientedPoint(Of(lower), false, ctx))
	}
	if !math.IsInf(upper, 1) {
		hs = append(hs, NewOrientedPoint(Of(upper), true, ctx))
	}
	return IntervalSet{region: partition.FromHyperplanes(hs...), precision: ctx}
}

// FromIntervals returns the union of the given intervals.
func FromIntervals(ctx precision.Context, intervals ...Interval) IntervalSet {
	s := EmptySet(ctx)
	for _, i := range intervals {
		s = s.Union(NewIntervalSet(i.Inf, i.Sup, ctx))
	}
	return s
}

// FromRegion wraps an existing one-dimensional region.
func FromRegion(r partition.Region[Point], ctx precision.Context) IntervalSet {
	return IntervalSet{region: r, precision: ctx}
}

// WholeLine returns the set covering the whole real line.
func WholeLine(ctx precision.Context) IntervalSet {
	return IntervalSet{region: partition.Full[Point](), precision: ctx}
}

// EmptySet returns the empty set.
func EmptySet(ctx precision.Context) IntervalSet {
	return IntervalSet{region: partition.Empty[Point](), precision: ctx}
}

// Region returns the underlying BSP region.
func (s IntervalSet) Region() partition.Region[Point] {
	return s.region
}

func (s IntervalSet) Precision() precision.Context {
	return s.precision
}

func (s IntervalSet) IsEmpty() bool { return s.region.IsEmpty() }
func (s IntervalSet) IsFull() bool  { return s.region.IsFull() }

// CheckPoint classifies the abscissa x.
func (s IntervalSet) CheckPoint(x float64) partition.Location {
	return s.region.CheckPoint(Of(x))
}

// coalesce drops every sorted location within tolerance of the one before
// it. A chain of near-coincident locations collapses onto its first member.
func coalesce(sorted []float64, ctx precision.Context) []float64 {
	var out []float64
	for i, x := range sorted {
		if i == 0 || !ctx.Eq(sorted[i-1], x) {
			out = append(out, x)
		}
	}
	return out
}

// Intervals returns the maximal intervals of the set in increasing order.
// The result is recomputed from the tree on every call.
func (s IntervalSet) Intervals() []Interval {
	locs := lo.Map(s.region.Boundary(), func(f partition.Facet[Point], _ int) float64 {
		return f.Sub.Hyperplane().(OrientedPoint).location.X
	})
	slices.Sort(locs)

	breaks := coalesce(locs, s.precision)
	if len(breaks) == 0 {
		if s.CheckPoint(0) == partition.Inside {
			return []Interval{{Inf: math.Inf(-1), Sup: math.Inf(1)}}
		}
		return nil
	}

	bounds := make([]float64, 0, len(breaks)+2)
	bounds = append(bounds, math.Inf(-1))
	bounds = append(bounds, breaks...)
	bounds = append(bounds, math.Inf(1))

	var out []Interval
	for i := 0; i+1 < len(bounds); i++ {
		lower, upper := bounds[i], bounds[i+1]
		if s.CheckPoint(s.probe(lower, upper)) != partition.Inside {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Sup == lower {
			out[n-1].Sup = upper
			continue
		}
		out = append(out, Interval{Inf: lower, Sup: upper})
	}
	return out
}

// probe returns an abscissa strictly between lower and upper and clear of
// both by more than the tolerance when the gap allows it.
func (s IntervalSet) probe(lower, upper float64) float64 {
	margin := 1 + 2*s.precision.Epsilon()
	switch {
	case math.IsInf(lower, -1):
		return upper - (math.Abs(upper) + margin)
	case math.IsInf(upper, 1):
		return lower + (math.Abs(lower) + margin)
	}
	return 0.5 * (lower + upper)
}

// Size returns the total length of the set.
func (s IntervalSet) Size() float64 {
	return lo.SumBy(s.Intervals(), Interval.Size)
}

// Inf returns the lowest point of the set, +∞ when the set is empty.
func (s IntervalSet) Inf() float64 {
	is := s.Intervals()
	if len(is) == 0 {
		return math.Inf(1)
	}
	return is[0].Inf
}

// Sup returns the highest point of the set, -∞ when the set is empty.
func (s IntervalSet) Sup() float64 {
	is := s.Intervals()
	if len(is) == 0 {
		return math.Inf(-1)
	}
	return is[len(is)-1].Sup
}

func (s IntervalSet) Union(o IntervalSet) IntervalSet {
	return s.with(partition.Union(s.region, o.region))
}

func (s IntervalSet) Intersection(o IntervalSet) IntervalSet {
	return s.with(partition.Intersection(s.region, o.region))
}

func (s IntervalSet) Difference(o IntervalSet) IntervalSet {
	return s.with(partition.Difference(s.region, o.region))
}

func (s IntervalSet) Xor(o IntervalSet) IntervalSet {
	return s.with(partition.Xor(s.region, o.region))
}

func (s IntervalSet) Complement() IntervalSet {
	return s.with(partition.Complement(s.region))
}

// Mirror returns the image of the set under x ↦ -x.
func (s IntervalSet) Mirror() IntervalSet {
	return s.with(partition.Transform(s.region, func(cut partition.SubHyperplane[Point]) partition.SubHyperplane[Point] {
		h := cut.Hyperplane().(OrientedPoint)
		return NewOrientedPoint(Of(-h.location.X), !h.direct, h.precision).WholeHyperplane()
	}))
}

func (s IntervalSet) with(r partition.Region[Point]) IntervalSet {
	return IntervalSet{region: r.Simplify(), precision: s.precision}
}

func (s IntervalSet) String() string {
	parts := lo.Map(s.Intervals(), func(i Interval, _ int) string { return i.String() })
	return "{" + strings.Join(parts, " ∪ ") + "}"
}
