package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/bspgeom/pkg/euclidean/oned"
	"github.com/chazu/bspgeom/pkg/euclidean/twod"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpPoint struct {
	p twod.Point
}

func (v *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.p.X, v.p.Y)
}
func (v *sexpPoint) Type() *zygo.RegisteredType { return nil }

type sexpLine struct {
	l twod.Line
}

func (v *sexpLine) SexpString(ps *zygo.PrintState) string { return v.l.String() }
func (v *sexpLine) Type() *zygo.RegisteredType            { return nil }

type sexpSubLine struct {
	s *twod.SubLine
}

func (v *sexpSubLine) SexpString(ps *zygo.PrintState) string {
	segs := v.s.Segments()
	if len(segs) == 0 {
		return "(segment empty)"
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = fmt.Sprintf("%v-%v", s.Start, s.End)
	}
	return "(segment " + strings.Join(parts, " ") + ")"
}
func (v *sexpSubLine) Type() *zygo.RegisteredType { return nil }

type sexpRegion struct {
	r twod.Region
}

func (v *sexpRegion) SexpString(ps *zygo.PrintState) string {
	switch {
	case v.r.IsEmpty():
		return "(region empty)"
	case v.r.IsFull():
		return "(region full)"
	}
	return fmt.Sprintf("(region %d edges)", len(v.r.Segments()))
}
func (v *sexpRegion) Type() *zygo.RegisteredType { return nil }

type sexpIntervals struct {
	set oned.IntervalSet
}

func (v *sexpIntervals) SexpString(ps *zygo.PrintState) string { return v.set.String() }
func (v *sexpIntervals) Type() *zygo.RegisteredType            { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toBound is toFloat64 that also accepts :inf and :neg-inf.
func toBound(s zygo.Sexp) (float64, error) {
	if name, ok := isKW(s); ok {
		switch name {
		case "inf":
			return math.Inf(1), nil
		case "neg-inf":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("invalid bound :%s, expected a number, :inf or :neg-inf", name)
	}
	return toFloat64(s)
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool accepts booleans and nil.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return false, nil
		}
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

func toPoint(s zygo.Sexp) (twod.Point, error) {
	if v, ok := s.(*sexpPoint); ok {
		return v.p, nil
	}
	return twod.Point{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

func toLine(s zygo.Sexp) (twod.Line, error) {
	if v, ok := s.(*sexpLine); ok {
		return v.l, nil
	}
	return twod.Line{}, fmt.Errorf("expected line, got %T (%s)", s, s.SexpString(nil))
}

func toSubLine(s zygo.Sexp) (*twod.SubLine, error) {
	if v, ok := s.(*sexpSubLine); ok {
		return v.s, nil
	}
	return nil, fmt.Errorf("expected segment, got %T (%s)", s, s.SexpString(nil))
}

func toRegion(s zygo.Sexp) (twod.Region, error) {
	if v, ok := s.(*sexpRegion); ok {
		return v.r, nil
	}
	return twod.Region{}, fmt.Errorf("expected region, got %T (%s)", s, s.SexpString(nil))
}

// toPoints accepts either points as separate arguments or a single list of
// points.
func toPoints(args []zygo.Sexp) ([]twod.Point, error) {
	if len(args) == 1 {
		if items, err := sexpListToSlice(args[0]); err == nil {
			args = items
		}
	}
	pts := make([]twod.Point, len(args))
	for i, a := range args {
		p, err := toPoint(a)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		pts[i] = p
	}
	return pts, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func sexpFloat(f float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: f}
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A keyword
// value that is itself a bound keyword (:inf) is not mistaken for a flag.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		switch {
		case !ok || name == "inf" || name == "neg-inf":
			result.positional = append(result.positional, args[i])
		case i+1 < len(args):
			result.kw[name] = args[i+1]
			i++
		default:
			// trailing keyword acts as a flag
			result.kw[name] = &zygo.SexpBool{Val: true}
		}
	}
	return result
}
