package oned

import (
	"fmt"

	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Compile-time interface checks.
var (
	_ partition.Hyperplane[Point]    = OrientedPoint{}
	_ partition.SubHyperplane[Point] = SubOrientedPoint{}
)

// OrientedPoint is the hyperplane of the real line. When direct is true the
// plus side lies towards +∞.
type OrientedPoint struct {
	location  Point
	direct    bool
	precision precision.Context
}

// NewOrientedPoint returns the hyperplane at loc.
func NewOrientedPoint(loc Point, direct bool, ctx precision.Context) OrientedPoint {
	return OrientedPoint{location: loc, direct: direct, precision: ctx}
}

// OrientedPointFromPoints returns the hyperplane at a whose plus side
// contains b.
func OrientedPointFromPoints(a, b Point, ctx precision.Context) (OrientedPoint, error) {
	if a.Eq(b, ctx) {
		return OrientedPoint{}, fmt.Errorf("oriented point from %v to %v: %w", a, b, partition.ErrDegenerateGeometry)
	}
	return NewOrientedPoint(a, b.X > a.X, ctx), nil
}

func (h OrientedPoint) Location() Point { return h.location }
func (h OrientedPoint) IsDirect() bool  { return h.direct }

func (h OrientedPoint) Offset(p Point) float64 {
	d := p.X - h.location.X
	if h.direct {
		return d
	}
	return -d
}

func (h OrientedPoint) Classify(p Point) partition.HyperplaneLocation {
	switch h.precision.Sign(h.Offset(p)) {
	case 1:
		return partition.Plus
	case -1:
		return partition.Minus
	}
	return partition.On
}

func (h OrientedPoint) Project(Point) Point {
	return h.location
}

func (h OrientedPoint) Reverse() partition.Hyperplane[Point] {
	return h.Reversed()
}

// Reversed is Reverse without the interface boxing.
func (h OrientedPoint) Reversed() OrientedPoint {
	return OrientedPoint{location: h.location, direct: !h.direct, precision: h.precision}
}

func (h OrientedPoint) SameAs(other partition.Hyperplane[Point]) bool {
	o, ok := other.(OrientedPoint)
	return ok && h.precision.Eq(h.location.X, o.location.X)
}

func (h OrientedPoint) SameOrientationAs(other partition.Hyperplane[Point]) bool {
	o, ok := other.(OrientedPoint)
	return ok && h.direct == o.direct
}

func (h OrientedPoint) WholeHyperplane() partition.SubHyperplane[Point] {
	return SubOrientedPoint{hyperplane: h}
}

func (h OrientedPoint) Precision() precision.Context {
	return h.precision
}

func (h OrientedPoint) String() string {
	return fmt.Sprintf("OrientedPoint{at: %g, direct: %t}", h.location.X, h.direct)
}

// SubOrientedPoint is the only non-empty sub-hyperplane of an oriented
// point: the point itself.
type SubOrientedPoint struct {
	hyperplane OrientedPoint
}

func (s SubOrientedPoint) Hyperplane() partition.Hyperplane[Point] {
	return s.hyperplane
}

func (s SubOrientedPoint) IsEmpty() bool {
	return false
}

func (s SubOrientedPoint) Split(h partition.Hyperplane[Point]) partition.SplitResult[Point] {
	switch h.Classify(s.hyperplane.location) {
	case partition.Plus:
		return partition.SplitResult[Point]{Plus: s}
	case partition.Minus:
		return partition.SplitResult[Point]{Minus: s}
	}
	return partition.SplitResult[Point]{}
}

func (s SubOrientedPoint) Reunite(other partition.SubHyperplane[Point]) (partition.SubHyperplane[Point], error) {
	if other == nil || !s.hyperplane.SameAs(other.Hyperplane()) {
		return nil, fmt.Errorf("reunite %v: %w", s.hyperplane, partition.ErrIncompatibleHyperplanes)
	}
	return s, nil
}
