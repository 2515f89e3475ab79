// Package oned provides the one-dimensional Euclidean space: points,
// oriented points used as hyperplanes, and interval sets built on the
// generic BSP region.
package oned

import (
	"fmt"
	"math"

	"github.com/chazu/bspgeom/pkg/numbers"
	"github.com/chazu/bspgeom/pkg/precision"
)

// nanHash is shared by every point or vector with a NaN coordinate.
const nanHash = 7785

// Point is a location on the real line.
type Point struct {
	X float64
}

// Vector is a displacement on the real line.
type Vector struct {
	X float64
}

var (
	Zero             = Point{X: 0}
	One              = Point{X: 1}
	NaN              = Point{X: math.NaN()}
	PositiveInfinity = Point{X: math.Inf(1)}
	NegativeInfinity = Point{X: math.Inf(-1)}
)

// Of is a shorthand for Point{X: x}.
func Of(x float64) Point {
	return Point{X: x}
}

func (p Point) IsNaN() bool      { return math.IsNaN(p.X) }
func (p Point) IsInfinite() bool { return !p.IsNaN() && math.IsInf(p.X, 0) }

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X}
}

// Subtract returns the vector from q to p.
func (p Point) Subtract(q Point) Vector {
	return Vector{X: p.X - q.X}
}

// Distance returns |p - q|.
func (p Point) Distance(q Point) float64 {
	return math.Abs(p.X - q.X)
}

// Lerp returns the point at fraction t from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: numbers.Value2(1-t, p.X, t, q.X)}
}

// Eq reports whether p and q are equal within the context tolerance.
func (p Point) Eq(q Point, ctx precision.Context) bool {
	return ctx.Eq(p.X, q.X)
}

// Equals is exact equality, except that all NaN points are equal.
func (p Point) Equals(q Point) bool {
	if p.IsNaN() || q.IsNaN() {
		return p.IsNaN() && q.IsNaN()
	}
	return p.X == q.X
}

// Hash is consistent with Equals.
func (p Point) Hash() uint64 {
	if p.IsNaN() {
		return nanHash
	}
	return 997 * hashFloat(p.X)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g)", p.X)
}

func (v Vector) Add(w Vector) Vector      { return Vector{X: v.X + w.X} }
func (v Vector) Subtract(w Vector) Vector { return Vector{X: v.X - w.X} }
func (v Vector) Scale(s float64) Vector   { return Vector{X: v.X * s} }
func (v Vector) Negate() Vector           { return Vector{X: -v.X} }
func (v Vector) Norm() float64            { return math.Abs(v.X) }
func (v Vector) Dot(w Vector) float64     { return v.X * w.X }
func (v Vector) IsNaN() bool              { return math.IsNaN(v.X) }

// Equals is exact equality, except that all NaN vectors are equal.
func (v Vector) Equals(w Vector) bool {
	return Point(v).Equals(Point(w))
}

// Hash is consistent with Equals.
func (v Vector) Hash() uint64 {
	return Point(v).Hash()
}

func (v Vector) String() string {
	return fmt.Sprintf("{%g}", v.X)
}

// hashFloat folds the bits of x, with -0 and 0 hashing alike.
func hashFloat(x float64) uint64 {
	if x == 0 {
		x = 0
	}
	b := math.Float64bits(x)
	return b ^ (b >> 32)
}
