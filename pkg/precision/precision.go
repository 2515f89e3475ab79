// Package precision provides tolerance-aware floating-point comparison.
//
// A Context treats two values as equal when their absolute difference is
// within its epsilon. That relation is NOT transitive: with epsilon 1,
// Eq(0, 1) and Eq(1, 2) hold while Eq(0, 2) does not. Algorithms built on a
// Context must never assume that equality chains.
package precision

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidConfiguration is returned when a context is built from an
// unusable epsilon.
var ErrInvalidConfiguration = errors.New("precision: invalid configuration")

// Ordering is the three-way result of Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Context compares floats with an absolute tolerance. The zero value is an
// exact context. Contexts are plain values and safe to share.
type Context struct {
	epsilon float64
}

// NewEpsilon returns a context with the given absolute tolerance. The
// tolerance must be finite and non-negative.
func NewEpsilon(eps float64) (Context, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return Context{}, fmt.Errorf("%w: epsilon %v must be finite and non-negative", ErrInvalidConfiguration, eps)
	}
	return Context{epsilon: eps}, nil
}

// MustEpsilon is like NewEpsilon but panics on an invalid tolerance.
func MustEpsilon(eps float64) Context {
	c, err := NewEpsilon(eps)
	if err != nil {
		panic(err)
	}
	return c
}

// Epsilon returns the absolute tolerance.
func (c Context) Epsilon() float64 {
	return c.epsilon
}

// Compare orders a and b, reporting Equal when they are within tolerance.
// NaN is never equal to anything and compares Greater.
func (c Context) Compare(a, b float64) Ordering {
	if c.Eq(a, b) {
		return Equal
	}
	if a < b {
		return Less
	}
	return Greater
}

// Eq reports whether a and b are within tolerance.
func (c Context) Eq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, c.epsilon)
}

// EqZero reports whether a is within tolerance of zero.
func (c Context) EqZero(a float64) bool {
	return c.Eq(a, 0)
}

func (c Context) Lt(a, b float64) bool  { return c.Compare(a, b) == Less }
func (c Context) Lte(a, b float64) bool { return c.Compare(a, b) <= Equal }
func (c Context) Gt(a, b float64) bool  { return c.Compare(a, b) == Greater }
func (c Context) Gte(a, b float64) bool { return c.Compare(a, b) >= Equal }

// Sign returns -1, 0 or 1 according to the sign of a, treating values within
// tolerance of zero as zero.
func (c Context) Sign(a float64) int {
	return int(c.Compare(a, 0))
}

func (c Context) String() string {
	return fmt.Sprintf("precision.Context{epsilon: %g}", c.epsilon)
}
