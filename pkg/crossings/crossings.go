// Package crossings finds intersection points among many sub-lines. Bounded
// segments are kept in an R-tree keyed by their bounding boxes so that a
// query only tests the sub-lines it can possibly cross; unbounded segments
// are tested linearly.
package crossings

import (
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/precision"
)

// minPad keeps bounding boxes of axis-aligned segments non-degenerate when
// the tolerance is zero.
const minPad = 1e-9

// R-tree node fan-out.
const (
	minChildren = 4
	maxChildren = 16
)

// Crossing is an intersection point with the position of the indexed
// sub-line it was found on.
type Crossing struct {
	Point twod.Point
	Index int
}

// entry is one bounded segment of an indexed sub-line.
type entry struct {
	rect  rtreego.Rect
	index int
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an immutable spatial index over a set of sub-lines.
type Index struct {
	subs      []*twod.SubLine
	tree      *rtreego.Rtree
	unbounded []int
	pad       float64
}

// NewIndex builds an index over subs. Sub-lines keep their position in the
// argument list as their index.
func NewIndex(ctx precision.Context, subs ...*twod.SubLine) (*Index, error) {
	idx := &Index{subs: subs, pad: math.Max(ctx.Epsilon(), minPad)}
	var objs []rtreego.Spatial
	for i, sub := range subs {
		unbounded := false
		for _, seg := range sub.Segments() {
			if seg.IsInfinite() {
				unbounded = true
				continue
			}
			rect, err := idx.bounds(seg)
			if err != nil {
				return nil, fmt.Errorf("crossings: sub-line %d: %w", i, err)
			}
			objs = append(objs, &entry{rect: rect, index: i})
		}
		if unbounded {
			idx.unbounded = append(idx.unbounded, i)
		}
	}
	idx.tree = rtreego.NewTree(2, minChildren, maxChildren, objs...)
	return idx, nil
}

func (idx *Index) bounds(seg twod.Segment) (rtreego.Rect, error) {
	lowX, highX := math.Min(seg.Start.X, seg.End.X), math.Max(seg.Start.X, seg.End.X)
	lowY, highY := math.Min(seg.Start.Y, seg.End.Y), math.Max(seg.Start.Y, seg.End.Y)
	return rtreego.NewRect(
		rtreego.Point{lowX - idx.pad, lowY - idx.pad},
		[]float64{highX - lowX + 2*idx.pad, highY - lowY + 2*idx.pad},
	)
}

// Len returns the number of indexed sub-lines.
func (idx *Index) Len() int {
	return len(idx.subs)
}

// candidates returns the positions of the sub-lines whose segments may
// meet sub, in increasing order.
func (idx *Index) candidates(sub *twod.SubLine) ([]int, error) {
	found := slices.Clone(idx.unbounded)
	for _, seg := range sub.Segments() {
		if seg.IsInfinite() {
			return lo.Range(len(idx.subs)), nil
		}
		rect, err := idx.bounds(seg)
		if err != nil {
			return nil, err
		}
		for _, s := range idx.tree.SearchIntersect(rect) {
			found = append(found, s.(*entry).index)
		}
	}
	found = lo.Uniq(found)
	slices.Sort(found)
	return found, nil
}

// Query returns the crossings of sub with the indexed sub-lines, ordered by
// index. The strict flag has the meaning of twod.SubLine.Intersection.
func (idx *Index) Query(sub *twod.SubLine, strict bool) ([]Crossing, error) {
	cands, err := idx.candidates(sub)
	if err != nil {
		return nil, fmt.Errorf("crossings: query: %w", err)
	}
	var out []Crossing
	for _, i := range cands {
		if p, ok := sub.Intersection(idx.subs[i], strict); ok {
			out = append(out, Crossing{Point: p, Index: i})
		}
	}
	return out, nil
}

// Between returns the distinct points where the boundaries of a and b
// cross.
func Between(a, b twod.Region, strict bool) ([]twod.Point, error) {
	ctx := a.Precision()
	toSubs := func(r twod.Region) []*twod.SubLine {
		return lo.Map(r.Segments(), func(s twod.Segment, _ int) *twod.SubLine { return s.SubLine() })
	}
	idx, err := NewIndex(ctx, toSubs(b)...)
	if err != nil {
		return nil, err
	}
	var points []twod.Point
	for _, sub := range toSubs(a) {
		hits, err := idx.Query(sub, strict)
		if err != nil {
			return nil, err
		}
		for _, h := range hits {
			if !lo.ContainsBy(points, func(p twod.Point) bool { return p.Eq(h.Point, ctx) }) {
				points = append(points, h.Point)
			}
		}
	}
	return points, nil
}
