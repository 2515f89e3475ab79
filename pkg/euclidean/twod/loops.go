package twod

import (
	"github.com/chazu/bspgeom/pkg/precision"
)

// Loop is a chain of boundary vertices. A closed loop returns to its first
// vertex implicitly; an open loop starts and ends at infinity.
type Loop struct {
	Vertices []Point
	Closed   bool
}

// SignedArea returns the shoelace area of a closed loop: positive when the
// loop turns counter-clockwise. Open loops have no area and return 0.
func (l Loop) SignedArea() float64 {
	if !l.Closed {
		return 0
	}
	var sum float64
	n := len(l.Vertices)
	for i := range n {
		sum += Vector(l.Vertices[i]).Cross(Vector(l.Vertices[(i+1)%n]))
	}
	return sum / 2
}

// Loops chains the boundary segments into loops. Collinear intermediate
// vertices are dropped.
func (r Region) Loops() []Loop {
	segs := r.Segments()
	used := make([]bool, len(segs))
	var loops []Loop

	// Chains coming from infinity first, so that closed loops never swallow
	// part of an open chain.
	for i, s := range segs {
		if !used[i] && s.Start.IsInfinite() {
			loops = append(loops, chain(segs, used, i, r.precision))
		}
	}
	for i := range segs {
		if !used[i] {
			loops = append(loops, chain(segs, used, i, r.precision))
		}
	}
	return loops
}

func chain(segs []Segment, used []bool, start int, ctx precision.Context) Loop {
	first := segs[start].Start
	var verts []Point
	for cur := start; ; {
		used[cur] = true
		verts = append(verts, segs[cur].Start)
		end := segs[cur].End
		if end.IsInfinite() {
			return Loop{Vertices: prune(append(verts, end), false, ctx)}
		}
		if !first.IsInfinite() && end.Eq(first, ctx) {
			return Loop{Vertices: prune(verts, true, ctx), Closed: true}
		}
		next := successor(segs, used, end, ctx)
		if next < 0 {
			return Loop{Vertices: prune(append(verts, end), false, ctx)}
		}
		cur = next
	}
}

func successor(segs []Segment, used []bool, at Point, ctx precision.Context) int {
	for i, s := range segs {
		if !used[i] && s.Start.Eq(at, ctx) {
			return i
		}
	}
	return -1
}

// prune drops vertices lying on the straight continuation of their
// neighbours. Vertices at infinity are kept.
func prune(verts []Point, closed bool, ctx precision.Context) []Point {
	for changed := true; changed && len(verts) > 3; {
		changed = false
		n := len(verts)
		for i := range n {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			prev, cur, next := verts[(i+n-1)%n], verts[i], verts[(i+1)%n]
			if prev.IsInfinite() || next.IsInfinite() {
				continue
			}
			in, out := cur.Subtract(prev), next.Subtract(cur)
			if ctx.EqZero(in.Cross(out)/max(in.Norm(), out.Norm())) && in.Dot(out) > 0 {
				verts = append(verts[:i:i], verts[i+1:]...)
				changed = true
				break
			}
		}
	}
	return verts
}
