package twod

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/euclidean/oned"
	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Compile-time interface check.
var _ partition.SubHyperplane[Point] = (*SubLine)(nil)

// SubLine is a part of a line: the line plus the set of abscissae that
// remain. Sub-lines are immutable.
type SubLine struct {
	line   Line
	region oned.IntervalSet
}

// NewSubLine returns the part of line covered by region, a set of
// abscissae along the line.
func NewSubLine(line Line, region oned.IntervalSet) *SubLine {
	return &SubLine{line: line, region: region}
}

// SegmentFromPoints returns the bounded sub-line from p1 to p2.
func SegmentFromPoints(p1, p2 Point, ctx precision.Context) (*SubLine, error) {
	line, err := LineFromPoints(p1, p2, ctx)
	if err != nil {
		return nil, err
	}
	return line.Span(line.Abscissa(p1), line.Abscissa(p2)), nil
}

// Line returns the supporting line.
func (s *SubLine) Line() Line {
	return s.line
}

// RemainingRegion returns the abscissae covered by the sub-line.
func (s *SubLine) RemainingRegion() oned.IntervalSet {
	return s.region
}

func (s *SubLine) Hyperplane() partition.Hyperplane[Point] {
	return s.line
}

func (s *SubLine) IsEmpty() bool {
	return s.region.IsEmpty()
}

// Size returns the total length of the sub-line.
func (s *SubLine) Size() float64 {
	return s.region.Size()
}

// Split cuts the sub-line by another line.
func (s *SubLine) Split(h partition.Hyperplane[Point]) partition.SplitResult[Point] {
	other := h.(Line)
	ctx := s.line.precision

	crossing, ok := s.line.Intersection(other)
	if !ok {
		switch ctx.Sign(other.OffsetOfLine(s.line)) {
		case -1:
			return partition.SplitResult[Point]{Minus: s}
		case 1:
			return partition.SplitResult[Point]{Plus: s}
		}
		return partition.SplitResult[Point]{}
	}

	// Rate of change of the other line's offset as the abscissa grows.
	rate := s.line.Direction().Cross(other.Direction())
	t := s.line.Abscissa(crossing)
	above := s.withRegion(s.region.Intersection(oned.NewIntervalSet(t, math.Inf(1), ctx)))
	below := s.withRegion(s.region.Intersection(oned.NewIntervalSet(math.Inf(-1), t, ctx)))
	if rate > 0 {
		return partition.SplitResult[Point]{Plus: above, Minus: below}
	}
	return partition.SplitResult[Point]{Plus: below, Minus: above}
}

// withRegion returns a sub-line on the same line, or nil for an empty
// region. The nil is returned untyped so callers see an empty part.
func (s *SubLine) withRegion(r oned.IntervalSet) partition.SubHyperplane[Point] {
	if r.IsEmpty() {
		return nil
	}
	return &SubLine{line: s.line, region: r}
}

// aligned maps o's abscissae into s's parameterization. It fails when the
// lines differ.
func (s *SubLine) aligned(o *SubLine) (oned.IntervalSet, error) {
	if o == nil {
		return oned.EmptySet(s.line.precision), nil
	}
	if !s.line.SameAs(o.line) {
		return oned.IntervalSet{}, fmt.Errorf("sub-lines on %v and %v: %w", s.line, o.line, partition.ErrIncompatibleHyperplanes)
	}
	if s.line.SameOrientationAs(o.line) {
		return o.region, nil
	}
	return o.region.Mirror(), nil
}

func (s *SubLine) Reunite(other partition.SubHyperplane[Point]) (partition.SubHyperplane[Point], error) {
	o, ok := other.(*SubLine)
	if !ok {
		return nil, fmt.Errorf("reunite with %T: %w", other, partition.ErrIncompatibleHyperplanes)
	}
	return s.Union(o)
}

// Union returns the abscissae covered by either sub-line.
func (s *SubLine) Union(o *SubLine) (*SubLine, error) {
	r, err := s.aligned(o)
	if err != nil {
		return nil, err
	}
	return &SubLine{line: s.line, region: s.region.Union(r)}, nil
}

// IntersectionWith returns the part covered by both sub-lines of the same
// line. Intersection computes crossings of sub-lines on different lines.
func (s *SubLine) IntersectionWith(o *SubLine) (*SubLine, error) {
	r, err := s.aligned(o)
	if err != nil {
		return nil, err
	}
	return &SubLine{line: s.line, region: s.region.Intersection(r)}, nil
}

// Difference returns the part of s not covered by o.
func (s *SubLine) Difference(o *SubLine) (*SubLine, error) {
	r, err := s.aligned(o)
	if err != nil {
		return nil, err
	}
	return &SubLine{line: s.line, region: s.region.Difference(r)}, nil
}

// Xor returns the part covered by exactly one of the sub-lines.
func (s *SubLine) Xor(o *SubLine) (*SubLine, error) {
	r, err := s.aligned(o)
	if err != nil {
		return nil, err
	}
	return &SubLine{line: s.line, region: s.region.Xor(r)}, nil
}

// Complement returns the rest of the line.
func (s *SubLine) Complement() *SubLine {
	return &SubLine{line: s.line, region: s.region.Complement()}
}

// Reversed returns the same point set on the reversed line.
func (s *SubLine) Reversed() *SubLine {
	return &SubLine{line: s.line.Reversed(), region: s.region.Mirror()}
}

// Segments returns one segment per maximal interval of the sub-line, in
// increasing abscissa order. Unbounded intervals give endpoints at
// infinity.
func (s *SubLine) Segments() []Segment {
	return lo.Map(s.region.Intervals(), func(i oned.Interval, _ int) Segment {
		return Segment{
			Start: s.line.PointAt(i.Inf),
			End:   s.line.PointAt(i.Sup),
			Line:  s.line,
		}
	})
}

// Intersection returns the crossing point of two sub-lines. Parallel lines
// never intersect. When strict is true the point must lie in the interior
// of both sub-lines; otherwise endpoints count too.
func (s *SubLine) Intersection(o *SubLine, strict bool) (Point, bool) {
	p, ok := s.line.Intersection(o.line)
	if !ok {
		return Point{}, false
	}
	loc1 := s.region.CheckPoint(s.line.Abscissa(p))
	loc2 := o.region.CheckPoint(o.line.Abscissa(p))
	if strict && (loc1 != partition.Inside || loc2 != partition.Inside) {
		return Point{}, false
	}
	if loc1 == partition.Outside || loc2 == partition.Outside {
		return Point{}, false
	}
	return p, true
}

func (s *SubLine) String() string {
	return fmt.Sprintf("SubLine{%v, %v}", s.line, s.region)
}
