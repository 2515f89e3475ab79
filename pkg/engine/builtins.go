package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/crossings"
	"github.com/chazu/bspgeom/pkg/euclidean/oned"
	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/precision"
	"github.com/chazu/bspgeom/pkg/scene"
)

// builtin is the signature zygomys expects for Go functions.
type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs the geometry builtins into a zygomys
// environment. Definitions populate s during evaluation.
//
// Source code must be preprocessed with preprocessSource() first so that
// :keyword tokens and kebab-case names are recognizable.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) {
	ctx := s.Precision()

	// -----------------------------------------------------------------------
	// Points and lines
	// -----------------------------------------------------------------------

	// (vec2 1 2)
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpPoint{p: twod.Pt(x, y)}, nil
	})

	env.AddFunction("point_x", pointCoord(func(p twod.Point) float64 { return p.X }))
	env.AddFunction("point_y", pointCoord(func(p twod.Point) float64 { return p.Y }))

	// (line (vec2 0 0) (vec2 1 0))
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, q, err := twoPoints("line", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		l, err := twod.LineFromPoints(p, q, ctx)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		return &sexpLine{l: l}, nil
	})

	// -----------------------------------------------------------------------
	// Sub-lines
	// -----------------------------------------------------------------------

	// (segment (vec2 0 0) (vec2 1 0))
	env.AddFunction("segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, q, err := twoPoints("segment", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		sub, err := twod.SegmentFromPoints(p, q, ctx)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("segment: %w", err)
		}
		return &sexpSubLine{s: sub}, nil
	})

	// (span l 0 :inf)
	env.AddFunction("span", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("span requires a line and two abscissae, got %d arguments", len(args))
		}
		l, err := toLine(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("span: %w", err)
		}
		set, err := intervalArgs("span", args[1:], ctx)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSubLine{s: twod.NewSubLine(l, set)}, nil
	})

	// (whole-line l)
	env.AddFunction("whole_line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("whole-line requires a line")
		}
		l, err := toLine(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("whole-line: %w", err)
		}
		return &sexpSubLine{s: l.WholeLine()}, nil
	})

	// (intersect s1 s2 :strict true) returns the crossing point or nil.
	env.AddFunction("intersect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("intersect requires two segments")
		}
		a, err := toSubLine(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: %w", err)
		}
		b, err := toSubLine(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: %w", err)
		}
		strict, err := strictFlag("intersect", pa)
		if err != nil {
			return zygo.SexpNull, err
		}
		p, ok := a.Intersection(b, strict)
		if !ok {
			return zygo.SexpNull, nil
		}
		return &sexpPoint{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// Interval sets
	// -----------------------------------------------------------------------

	// (interval 1 3), (interval :neg-inf 0)
	env.AddFunction("interval", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		set, err := intervalArgs("interval", args, ctx)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpIntervals{set: set}, nil
	})

	// (intervals set) returns ((inf sup) ...).
	env.AddFunction("intervals", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("intervals requires one argument")
		}
		var set oned.IntervalSet
		switch v := args[0].(type) {
		case *sexpIntervals:
			set = v.set
		case *sexpSubLine:
			set = v.s.RemainingRegion()
		default:
			return zygo.SexpNull, fmt.Errorf("intervals: expected interval set or segment, got %T", args[0])
		}
		pairs := lo.Map(set.Intervals(), func(i oned.Interval, _ int) zygo.Sexp {
			return zygo.MakeList([]zygo.Sexp{sexpFloat(i.Inf), sexpFloat(i.Sup)})
		})
		return zygo.MakeList(pairs), nil
	})

	// (size s) for interval sets and segments.
	env.AddFunction("size", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("size requires one argument")
		}
		switch v := args[0].(type) {
		case *sexpIntervals:
			return sexpFloat(v.set.Size()), nil
		case *sexpSubLine:
			return sexpFloat(v.s.Size()), nil
		case *sexpRegion:
			return sexpFloat(v.r.Size()), nil
		}
		return zygo.SexpNull, fmt.Errorf("size: unsupported operand %T", args[0])
	})

	// -----------------------------------------------------------------------
	// Regions
	// -----------------------------------------------------------------------

	// (halfplane p q) is the region left of the line from p to q.
	env.AddFunction("halfplane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 1 {
			l, err := toLine(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("halfplane: %w", err)
			}
			return &sexpRegion{r: twod.FromLines(ctx, l)}, nil
		}
		p, q, err := twoPoints("halfplane", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		l, err := twod.LineFromPoints(p, q, ctx)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("halfplane: %w", err)
		}
		return &sexpRegion{r: twod.FromLines(ctx, l)}, nil
	})

	env.AddFunction("polygon", polygonBuiltin("polygon", twod.Polygon, s))
	env.AddFunction("convex", polygonBuiltin("convex", twod.ConvexPolygon, s))

	// (rectangle (vec2 0 0) (vec2 2 1))
	env.AddFunction("rectangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, q, err := twoPoints("rectangle", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		r, err := twod.Rectangle(ctx, p, q)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		return &sexpRegion{r: r}, nil
	})

	env.AddFunction("full_plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &sexpRegion{r: twod.Full(ctx)}, nil
	})
	env.AddFunction("empty_region", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &sexpRegion{r: twod.Empty(ctx)}, nil
	})

	env.AddFunction("union", setBuiltin(opUnion))
	env.AddFunction("intersection", setBuiltin(opIntersection))
	env.AddFunction("difference", setBuiltin(opDifference))
	env.AddFunction("xor", setBuiltin(opXor))

	// (complement r)
	env.AddFunction("complement", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("complement requires one argument")
		}
		switch v := args[0].(type) {
		case *sexpRegion:
			return &sexpRegion{r: v.r.Complement()}, nil
		case *sexpIntervals:
			return &sexpIntervals{set: v.set.Complement()}, nil
		case *sexpSubLine:
			return &sexpSubLine{s: v.s.Complement()}, nil
		}
		return zygo.SexpNull, fmt.Errorf("complement: unsupported operand %T", args[0])
	})

	// (check-point r p) returns "inside", "outside" or "boundary".
	env.AddFunction("check_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("check-point requires a region and a point")
		}
		switch v := args[0].(type) {
		case *sexpRegion:
			p, err := toPoint(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("check-point: %w", err)
			}
			return &zygo.SexpStr{S: v.r.CheckPoint(p).String()}, nil
		case *sexpIntervals:
			x, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("check-point: %w", err)
			}
			return &zygo.SexpStr{S: v.set.CheckPoint(x).String()}, nil
		}
		return zygo.SexpNull, fmt.Errorf("check-point: expected region or interval set, got %T", args[0])
	})

	env.AddFunction("area", regionMeasure("area", twod.Region.Size))
	env.AddFunction("perimeter", regionMeasure("perimeter", twod.Region.BoundarySize))

	// (boundary r) returns the boundary as a list of segments.
	env.AddFunction("boundary", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("boundary requires a region")
		}
		r, err := toRegion(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("boundary: %w", err)
		}
		segs := lo.Map(r.Segments(), func(seg twod.Segment, _ int) zygo.Sexp {
			return &sexpSubLine{s: seg.SubLine()}
		})
		return zygo.MakeList(segs), nil
	})

	// (crossings r1 r2 :strict false) returns the points where the
	// boundaries cross.
	env.AddFunction("crossings", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("crossings requires two regions")
		}
		a, err := toRegion(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crossings: %w", err)
		}
		b, err := toRegion(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crossings: %w", err)
		}
		strict, err := strictFlag("crossings", pa)
		if err != nil {
			return zygo.SexpNull, err
		}
		pts, err := crossings.Between(a, b, strict)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crossings: %w", err)
		}
		return zygo.MakeList(lo.Map(pts, func(p twod.Point, _ int) zygo.Sexp {
			return &sexpPoint{p: p}
		})), nil
	})

	// -----------------------------------------------------------------------
	// Named objects
	// -----------------------------------------------------------------------

	// (defregion "name" r)
	env.AddFunction("defregion", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defregion requires a name and a region")
		}
		objName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defregion: name: %w", err)
		}
		r, err := toRegion(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defregion: %w", err)
		}
		s.DefineRegion(objName, r)
		return args[1], nil
	})

	// (defsegment "name" seg)
	env.AddFunction("defsegment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defsegment requires a name and a segment")
		}
		objName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsegment: name: %w", err)
		}
		sub, err := toSubLine(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsegment: %w", err)
		}
		s.DefineSegment(objName, sub)
		return args[1], nil
	})

	// (region "name")
	env.AddFunction("region", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		obj, err := lookup("region", s, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		if obj.Kind != scene.KindRegion {
			return zygo.SexpNull, fmt.Errorf("region: %q is a %s", obj.Name, obj.Kind)
		}
		return &sexpRegion{r: obj.Region}, nil
	})

	// (lookup "name") returns a region or a segment.
	env.AddFunction("lookup", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		obj, err := lookup("lookup", s, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		if obj.Kind == scene.KindSegment {
			return &sexpSubLine{s: obj.Sub}, nil
		}
		return &sexpRegion{r: obj.Region}, nil
	})
}

// ---------------------------------------------------------------------------
// Builtin helpers
// ---------------------------------------------------------------------------

func pointCoord(get func(twod.Point) float64) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires one point", name)
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return sexpFloat(get(p)), nil
	}
}

func twoPoints(fn string, args []zygo.Sexp) (twod.Point, twod.Point, error) {
	if len(args) != 2 {
		return twod.Point{}, twod.Point{}, fmt.Errorf("%s requires exactly 2 points, got %d arguments", fn, len(args))
	}
	p, err := toPoint(args[0])
	if err != nil {
		return twod.Point{}, twod.Point{}, fmt.Errorf("%s: %w", fn, err)
	}
	q, err := toPoint(args[1])
	if err != nil {
		return twod.Point{}, twod.Point{}, fmt.Errorf("%s: %w", fn, err)
	}
	return p, q, nil
}

func intervalArgs(fn string, args []zygo.Sexp, ctx precision.Context) (oned.IntervalSet, error) {
	if len(args) != 2 {
		return oned.IntervalSet{}, fmt.Errorf("%s requires lower and upper bounds", fn)
	}
	lower, err := toBound(args[0])
	if err != nil {
		return oned.IntervalSet{}, fmt.Errorf("%s: lower: %w", fn, err)
	}
	upper, err := toBound(args[1])
	if err != nil {
		return oned.IntervalSet{}, fmt.Errorf("%s: upper: %w", fn, err)
	}
	if lower > upper {
		return oned.IntervalSet{}, fmt.Errorf("%s: lower bound %g exceeds upper bound %g", fn, lower, upper)
	}
	return oned.NewIntervalSet(lower, upper, ctx), nil
}

func strictFlag(fn string, pa kwArgs) (bool, error) {
	v, ok := pa.kw["strict"]
	if !ok {
		return false, nil
	}
	strict, err := toBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: strict: %w", fn, err)
	}
	return strict, nil
}

func polygonBuiltin(fn string, build func(ctx precision.Context, vertices ...twod.Point) (twod.Region, error), s *scene.Scene) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		if len(pts) < 3 {
			return zygo.SexpNull, fmt.Errorf("%s requires at least 3 vertices, got %d", fn, len(pts))
		}
		r, err := build(s.Precision(), pts...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &sexpRegion{r: r}, nil
	}
}

func regionMeasure(fn string, measure func(twod.Region) float64) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires a region", fn)
		}
		r, err := toRegion(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return sexpFloat(measure(r)), nil
	}
}

func lookup(fn string, s *scene.Scene, args []zygo.Sexp) (*scene.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s requires a name argument", fn)
	}
	objName, err := toString(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: name: %w", fn, err)
	}
	obj := s.Lookup(objName)
	if obj == nil {
		return nil, fmt.Errorf("%s: no object named %q", fn, objName)
	}
	return obj, nil
}
