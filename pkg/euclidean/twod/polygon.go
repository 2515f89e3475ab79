package twod

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chazu/bspgeom/pkg/partition"
	"github.com/chazu/bspgeom/pkg/precision"
)

// ErrNotConvex is returned by ConvexPolygon for vertex lists that turn both
// ways.
var ErrNotConvex = errors.New("twod: polygon is not convex")

// ConvexPolygon returns the interior of a convex polygon. The vertices may
// be given in either orientation.
func ConvexPolygon(ctx precision.Context, vertices ...Point) (Region, error) {
	verts, err := orient(ctx, vertices)
	if err != nil {
		return Region{}, err
	}
	n := len(verts)
	lines := make([]Line, 0, n)
	for i := range n {
		a, b, c := verts[i], verts[(i+1)%n], verts[(i+2)%n]
		if ctx.Sign(b.Subtract(a).Cross(c.Subtract(b))) < 0 {
			return Region{}, fmt.Errorf("convex polygon at %v: %w", b, ErrNotConvex)
		}
		l, err := LineFromPoints(a, b, ctx)
		if err != nil {
			return Region{}, fmt.Errorf("convex polygon edge %d: %w", i, err)
		}
		lines = append(lines, l)
	}
	return FromLines(ctx, lines...), nil
}

// orient checks the vertex list and returns it in counter-clockwise order.
func orient(ctx precision.Context, vertices []Point) ([]Point, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon with %d vertices: %w", len(vertices), partition.ErrDegenerateGeometry)
	}
	loop := Loop{Vertices: vertices, Closed: true}
	area := loop.SignedArea()
	if ctx.EqZero(area) {
		return nil, fmt.Errorf("polygon with zero area: %w", partition.ErrDegenerateGeometry)
	}
	if area < 0 {
		rev := slices.Clone(vertices)
		slices.Reverse(rev)
		return rev, nil
	}
	return vertices, nil
}

// Polygon returns the interior of a simple polygon, convex or not, given
// by its vertices in either orientation. Self-intersecting vertex lists
// follow the even-odd rule.
//
// The region is the exclusive-or of one strip per non-vertical edge: the
// points below the edge and strictly between its endpoints' abscissae. A
// point lies below an odd number of edges exactly when it is inside.
func Polygon(ctx precision.Context, vertices ...Point) (Region, error) {
	if _, err := orient(ctx, vertices); err != nil {
		return Region{}, err
	}
	r := Empty(ctx)
	n := len(vertices)
	for i := range n {
		p, q := vertices[i], vertices[(i+1)%n]
		if p.Eq(q, ctx) {
			return Region{}, fmt.Errorf("polygon edge %d: %w", i, partition.ErrDegenerateGeometry)
		}
		if ctx.Eq(p.X, q.X) {
			continue
		}
		strip, err := edgeStrip(p, q, ctx)
		if err != nil {
			return Region{}, fmt.Errorf("polygon edge %d: %w", i, err)
		}
		r = r.Xor(strip)
	}
	return r, nil
}

func edgeStrip(p, q Point, ctx precision.Context) (Region, error) {
	if p.X > q.X {
		p, q = q, p
	}
	right, err := LineFromPoints(Pt(p.X, 0), Pt(p.X, -1), ctx)
	if err != nil {
		return Region{}, err
	}
	left, err := LineFromPoints(Pt(q.X, -1), Pt(q.X, 0), ctx)
	if err != nil {
		return Region{}, err
	}
	below, err := LineFromPoints(q, p, ctx)
	if err != nil {
		return Region{}, err
	}
	return FromLines(ctx, right, left, below), nil
}

// Rectangle returns the axis-aligned rectangle spanned by two corners.
func Rectangle(ctx precision.Context, a, b Point) (Region, error) {
	low, high := Pt(min(a.X, b.X), min(a.Y, b.Y)), Pt(max(a.X, b.X), max(a.Y, b.Y))
	return ConvexPolygon(ctx, low, Pt(high.X, low.Y), high, Pt(low.X, high.Y))
}
