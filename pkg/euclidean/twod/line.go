package twod

import (
	"fmt"
	"math"

	"github.com/chazu/bspgeom/pkg/euclidean/oned"
	"github.com/chazu/bspgeom/pkg/numbers"
	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Compile-time interface check.
var _ partition.Hyperplane[Point] = Line{}

// Line is an oriented line of the plane. The minus side is to the left of
// its direction and the plus side to the right, so a region bounded by
// counter-clockwise edges has its interior on the minus side of each one.
//
// Points on the line are parameterized by their abscissa: the signed
// distance along the direction from the foot of the perpendicular through
// the origin.
type Line struct {
	angle        float64
	cos          float64
	sin          float64
	originOffset float64
	precision    precision.Context
}

// LineFromPoints returns the line through p1 and p2, directed from p1 to p2.
func LineFromPoints(p1, p2 Point, ctx precision.Context) (Line, error) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	d := math.Hypot(dx, dy)
	if ctx.EqZero(d) || math.IsNaN(d) || math.IsInf(d, 0) {
		return Line{}, fmt.Errorf("line through %v and %v: %w", p1, p2, partition.ErrDegenerateGeometry)
	}
	return Line{
		angle:        normalizeAngle(math.Atan2(dy, dx)),
		cos:          dx / d,
		sin:          dy / d,
		originOffset: numbers.Value2(p2.X, p1.Y, -p1.X, p2.Y) / d,
		precision:    ctx,
	}, nil
}

// LineFromPointAndAngle returns the line through p whose direction makes
// the given angle with the x axis.
func LineFromPointAndAngle(p Point, angle float64, ctx precision.Context) Line {
	angle = normalizeAngle(angle)
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Line{
		angle:        angle,
		cos:          cos,
		sin:          sin,
		originOffset: numbers.Value2(cos, p.Y, -sin, p.X),
		precision:    ctx,
	}
}

// LineFromPointAndDirection returns the line through p along dir.
func LineFromPointAndDirection(p Point, dir Vector, ctx precision.Context) (Line, error) {
	if ctx.EqZero(dir.Norm()) {
		return Line{}, fmt.Errorf("line through %v along %v: %w", p, dir, partition.ErrDegenerateGeometry)
	}
	return LineFromPoints(p, p.Add(dir), ctx)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Angle returns the direction angle in [0, 2π).
func (l Line) Angle() float64 { return l.angle }

// Direction returns the unit direction vector.
func (l Line) Direction() Vector { return Vector{X: l.cos, Y: l.sin} }

// OriginOffset returns the offset of the origin from the line.
func (l Line) OriginOffset() float64 { return l.originOffset }

func (l Line) Precision() precision.Context { return l.precision }

// Offset returns the signed distance of p: positive on the right of the
// direction, negative on the left.
func (l Line) Offset(p Point) float64 {
	return numbers.Value3(l.sin, p.X, -l.cos, p.Y, 1, l.originOffset)
}

func (l Line) Classify(p Point) partition.HyperplaneLocation {
	switch l.precision.Sign(l.Offset(p)) {
	case 1:
		return partition.Plus
	case -1:
		return partition.Minus
	}
	return partition.On
}

// Contains reports whether p lies on the line within tolerance.
func (l Line) Contains(p Point) bool {
	return l.Classify(p) == partition.On
}

// Distance returns the unsigned distance of p from the line.
func (l Line) Distance(p Point) float64 {
	return math.Abs(l.Offset(p))
}

// Abscissa maps p to its coordinate along the line.
func (l Line) Abscissa(p Point) float64 {
	return numbers.Value2(l.cos, p.X, l.sin, p.Y)
}

// PointAt maps an abscissa back to the plane. Infinite abscissae give
// points at infinity along each axis the line is not parallel to.
func (l Line) PointAt(t float64) Point {
	if !math.IsInf(t, 0) {
		return Point{
			X: numbers.Value2(t, l.cos, -l.originOffset, l.sin),
			Y: numbers.Value2(t, l.sin, l.originOffset, l.cos),
		}
	}
	foot := l.PointAt(0)
	p := foot
	if l.cos != 0 {
		p.X = math.Copysign(math.Inf(1), t*l.cos)
	}
	if l.sin != 0 {
		p.Y = math.Copysign(math.Inf(1), t*l.sin)
	}
	return p
}

func (l Line) Project(p Point) Point {
	return l.PointAt(l.Abscissa(p))
}

func (l Line) Reverse() partition.Hyperplane[Point] {
	return l.Reversed()
}

// Reversed returns the same line traversed the other way.
func (l Line) Reversed() Line {
	return Line{
		angle:        normalizeAngle(l.angle + math.Pi),
		cos:          -l.cos,
		sin:          -l.sin,
		originOffset: -l.originOffset,
		precision:    l.precision,
	}
}

// IsParallelTo reports whether both lines have the same or opposite
// directions within tolerance.
func (l Line) IsParallelTo(o Line) bool {
	return l.precision.EqZero(numbers.Value2(l.sin, o.cos, -l.cos, o.sin))
}

// OffsetOfLine returns the offset of a parallel line o from l.
func (l Line) OffsetOfLine(o Line) float64 {
	if numbers.Value2(l.cos, o.cos, l.sin, o.sin) > 0 {
		return l.originOffset - o.originOffset
	}
	return l.originOffset + o.originOffset
}

// Intersection returns the crossing point of two lines, or false when they
// are parallel.
func (l Line) Intersection(o Line) (Point, bool) {
	d := numbers.Value2(l.sin, o.cos, -o.sin, l.cos)
	if l.precision.EqZero(d) {
		return Point{}, false
	}
	return Point{
		X: numbers.Value2(l.cos, o.originOffset, -o.cos, l.originOffset) / d,
		Y: numbers.Value2(l.sin, o.originOffset, -o.sin, l.originOffset) / d,
	}, true
}

func (l Line) SameAs(other partition.Hyperplane[Point]) bool {
	o, ok := other.(Line)
	return ok && l.IsParallelTo(o) && l.precision.EqZero(l.OffsetOfLine(o))
}

func (l Line) SameOrientationAs(other partition.Hyperplane[Point]) bool {
	o, ok := other.(Line)
	return ok && numbers.Value2(l.cos, o.cos, l.sin, o.sin) >= 0
}

func (l Line) WholeHyperplane() partition.SubHyperplane[Point] {
	return l.WholeLine()
}

// WholeLine returns the sub-line covering the entire line.
func (l Line) WholeLine() *SubLine {
	return &SubLine{line: l, region: oned.WholeLine(l.precision)}
}

// Span returns the sub-line covering abscissae [lower, upper].
func (l Line) Span(lower, upper float64) *SubLine {
	return &SubLine{line: l, region: oned.NewIntervalSet(lower, upper, l.precision)}
}

func (l Line) String() string {
	return fmt.Sprintf("Line{through: %v, direction: %v}", l.PointAt(0), l.Direction())
}
