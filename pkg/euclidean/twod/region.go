package twod

import (
	"math"

	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Region is a planar region bounded by line segments, possibly unbounded,
// with holes or several disconnected parts. The zero value is empty.
type Region struct {
	tree      partition.Region[Point]
	precision precision.Context
}

// NewRegion wraps a BSP region of the plane.
func NewRegion(tree partition.Region[Point], ctx precision.Context) Region {
	return Region{tree: tree, precision: ctx}
}

// Full returns the whole plane.
func Full(ctx precision.Context) Region {
	return Region{tree: partition.Full[Point](), precision: ctx}
}

// Empty returns the empty region.
func Empty(ctx precision.Context) Region {
	return Region{tree: partition.Empty[Point](), precision: ctx}
}

// FromLines returns the convex region to the left of every line.
func FromLines(ctx precision.Context, lines ...Line) Region {
	hs := lo.Map(lines, func(l Line, _ int) partition.Hyperplane[Point] { return l })
	return Region{tree: partition.FromHyperplanes(hs...), precision: ctx}
}

// Tree returns the underlying BSP region.
func (r Region) Tree() partition.Region[Point] {
	return r.tree
}

func (r Region) Precision() precision.Context {
	return r.precision
}

func (r Region) CheckPoint(p Point) partition.Location {
	return r.tree.CheckPoint(p)
}

func (r Region) IsEmpty() bool { return r.tree.IsEmpty() }
func (r Region) IsFull() bool  { return r.tree.IsFull() }

func (r Region) Union(o Region) Region {
	return r.with(partition.Union(r.tree, o.tree))
}

func (r Region) Intersection(o Region) Region {
	return r.with(partition.Intersection(r.tree, o.tree))
}

func (r Region) Difference(o Region) Region {
	return r.with(partition.Difference(r.tree, o.tree))
}

func (r Region) Xor(o Region) Region {
	return r.with(partition.Xor(r.tree, o.tree))
}

func (r Region) Complement() Region {
	return r.with(partition.Complement(r.tree))
}

func (r Region) with(t partition.Region[Point]) Region {
	return Region{tree: t.Simplify(), precision: r.precision}
}

// Segments returns the boundary of the region as segments oriented with
// the interior on their left.
func (r Region) Segments() []Segment {
	var segs []Segment
	for _, f := range r.tree.Boundary() {
		sub := f.Sub.(*SubLine)
		if !f.PlusOutside {
			sub = sub.Reversed()
		}
		segs = append(segs, sub.Segments()...)
	}
	return segs
}

// BoundarySize returns the total length of the boundary.
func (r Region) BoundarySize() float64 {
	return lo.SumBy(r.Segments(), Segment.Length)
}

// Size returns the area of the region, +∞ when it is unbounded.
func (r Region) Size() float64 {
	loops := r.Loops()
	if len(loops) == 0 {
		if r.CheckPoint(Zero) == partition.Inside {
			return math.Inf(1)
		}
		return 0
	}
	var sum float64
	for _, l := range loops {
		if !l.Closed {
			return math.Inf(1)
		}
		sum += l.SignedArea()
	}
	if sum < 0 {
		return math.Inf(1)
	}
	return sum
}

// IsBounded reports whether the region has finite area.
func (r Region) IsBounded() bool {
	return !math.IsInf(r.Size(), 1)
}

// Barycenter returns the centroid of the region, NaN when the region is
// empty or unbounded.
func (r Region) Barycenter() Point {
	var area, cx, cy float64
	for _, l := range r.Loops() {
		if !l.Closed {
			return NaN
		}
		n := len(l.Vertices)
		for i := range n {
			p, q := l.Vertices[i], l.Vertices[(i+1)%n]
			c := Vector(p).Cross(Vector(q))
			area += c
			cx += (p.X + q.X) * c
			cy += (p.Y + q.Y) * c
		}
	}
	if area <= 0 || r.precision.EqZero(area) {
		return NaN
	}
	return Point{X: cx / (3 * area), Y: cy / (3 * area)}
}
