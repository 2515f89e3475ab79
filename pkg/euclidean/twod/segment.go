package twod

import (
	"fmt"
	"math"
)

// Segment is a connected piece of a line between two points, either of
// which may be at infinity.
type Segment struct {
	Start Point
	End   Point
	Line  Line
}

// Length returns the distance between the endpoints, +∞ when unbounded.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// IsInfinite reports whether either endpoint lies at infinity.
func (s Segment) IsInfinite() bool {
	return s.Start.IsInfinite() || s.End.IsInfinite()
}

// SubLine returns the segment as a sub-line of its line.
func (s Segment) SubLine() *SubLine {
	lower, upper := math.Inf(-1), math.Inf(1)
	if !s.Start.IsInfinite() {
		lower = s.Line.Abscissa(s.Start)
	}
	if !s.End.IsInfinite() {
		upper = s.Line.Abscissa(s.End)
	}
	return s.Line.Span(lower, upper)
}

func (s Segment) String() string {
	return fmt.Sprintf("[%v → %v]", s.Start, s.End)
}
