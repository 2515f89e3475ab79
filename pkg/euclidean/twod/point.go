// Package twod provides the two-dimensional Euclidean space: points and
// vectors, lines as hyperplanes, sub-lines bounded by interval sets, and
// polygonal regions built on the generic BSP region.
package twod

import (
	"fmt"
	"math"

	"github.com/chazu/bspgeom/pkg/numbers"
	"github.com/chazu/bspgeom/pkg/precision"
)

// nanHash is shared by every point or vector with a NaN coordinate.
const nanHash = 542

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement in the plane.
type Vector struct {
	X, Y float64
}

var (
	Zero             = Point{}
	One              = Point{X: 1, Y: 1}
	NaN              = Point{X: math.NaN(), Y: math.NaN()}
	PositiveInfinity = Point{X: math.Inf(1), Y: math.Inf(1)}
	NegativeInfinity = Point{X: math.Inf(-1), Y: math.Inf(-1)}

	PlusX  = Vector{X: 1}
	MinusX = Vector{X: -1}
	PlusY  = Vector{Y: 1}
	MinusY = Vector{Y: -1}
)

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func (p Point) IsInfinite() bool {
	return !p.IsNaN() && (math.IsInf(p.X, 0) || math.IsInf(p.Y, 0))
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Subtract returns the vector from q to p.
func (p Point) Subtract(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the point at fraction t from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: numbers.Value2(1-t, p.X, t, q.X),
		Y: numbers.Value2(1-t, p.Y, t, q.Y),
	}
}

// Eq reports whether every coordinate of p and q is equal within the context
// tolerance.
func (p Point) Eq(q Point, ctx precision.Context) bool {
	return ctx.Eq(p.X, q.X) && ctx.Eq(p.Y, q.Y)
}

// Equals is exact equality, except that all NaN points are equal.
func (p Point) Equals(q Point) bool {
	if p.IsNaN() || q.IsNaN() {
		return p.IsNaN() && q.IsNaN()
	}
	return p.X == q.X && p.Y == q.Y
}

// Hash is consistent with Equals.
func (p Point) Hash() uint64 {
	if p.IsNaN() {
		return nanHash
	}
	return 122 * (76*hashFloat(p.X) + hashFloat(p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v Vector) Add(w Vector) Vector      { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vector) Subtract(w Vector) Vector { return Vector{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vector) Scale(s float64) Vector   { return Vector{X: v.X * s, Y: v.Y * s} }
func (v Vector) Negate() Vector           { return Vector{X: -v.X, Y: -v.Y} }
func (v Vector) Norm() float64            { return math.Hypot(v.X, v.Y) }
func (v Vector) IsNaN() bool              { return Point(v).IsNaN() }

// Dot returns the scalar product.
func (v Vector) Dot(w Vector) float64 {
	return numbers.Value2(v.X, w.X, v.Y, w.Y)
}

// Cross returns the z component of the cross product v × w.
func (v Vector) Cross(w Vector) float64 {
	return numbers.Value2(v.X, w.Y, -v.Y, w.X)
}

// Normalize returns the unit vector along v, or false when v has no usable
// direction.
func (v Vector) Normalize() (Vector, bool) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Vector{}, false
	}
	return Vector{X: v.X / n, Y: v.Y / n}, true
}

// Orthogonal returns v rotated a quarter turn counter-clockwise.
func (v Vector) Orthogonal() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Equals is exact equality, except that all NaN vectors are equal.
func (v Vector) Equals(w Vector) bool {
	return Point(v).Equals(Point(w))
}

// Hash is consistent with Equals.
func (v Vector) Hash() uint64 {
	return Point(v).Hash()
}

func (v Vector) String() string {
	return fmt.Sprintf("{%g, %g}", v.X, v.Y)
}

// hashFloat folds the bits of x, with -0 and 0 hashing alike.
func hashFloat(x float64) uint64 {
	if x == 0 {
		x = 0
	}
	b := math.Float64bits(x)
	return b ^ (b >> 32)
}
