package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"
)

// setOp names a boolean operation shared by regions, interval sets and
// sub-lines.
type setOp int

const (
	opUnion setOp = iota
	opIntersection
	opDifference
	opXor
)

func (o setOp) String() string {
	switch o {
	case opUnion:
		return "union"
	case opIntersection:
		return "intersection"
	case opDifference:
		return "difference"
	case opXor:
		return "xor"
	default:
		return fmt.Sprintf("setOp(%d)", int(o))
	}
}

// variadic reports whether the operation folds over any number of operands.
func (o setOp) variadic() bool {
	return o == opUnion || o == opIntersection
}

// setBuiltin folds op over its operands from the left. Union and
// intersection take one or more operands, difference and xor exactly two.
func setBuiltin(op setOp) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch {
		case op.variadic() && len(args) == 0:
			return zygo.SexpNull, fmt.Errorf("%s requires at least one operand", op)
		case !op.variadic() && len(args) != 2:
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 operands, got %d", op, len(args))
		}
		acc := args[0]
		for i, next := range args[1:] {
			var err error
			acc, err = combine(op, acc, next)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: operand %d: %w", op, i+1, err)
			}
		}
		if !isSetOperand(acc) {
			return zygo.SexpNull, fmt.Errorf("%s: unsupported operand %T (%s)", op, acc, acc.SexpString(nil))
		}
		return acc, nil
	}
}

func isSetOperand(s zygo.Sexp) bool {
	switch s.(type) {
	case *sexpRegion, *sexpIntervals, *sexpSubLine:
		return true
	}
	return false
}

// combine applies op to a and b, which must have the same operand type.
func combine(op setOp, a, b zygo.Sexp) (zygo.Sexp, error) {
	switch x := a.(type) {
	case *sexpRegion:
		y, err := toRegion(b)
		if err != nil {
			return nil, err
		}
		switch op {
		case opUnion:
			return &sexpRegion{r: x.r.Union(y)}, nil
		case opIntersection:
			return &sexpRegion{r: x.r.Intersection(y)}, nil
		case opDifference:
			return &sexpRegion{r: x.r.Difference(y)}, nil
		default:
			return &sexpRegion{r: x.r.Xor(y)}, nil
		}

	case *sexpIntervals:
		y, ok := b.(*sexpIntervals)
		if !ok {
			return nil, fmt.Errorf("expected interval set, got %T (%s)", b, b.SexpString(nil))
		}
		switch op {
		case opUnion:
			return &sexpIntervals{set: x.set.Union(y.set)}, nil
		case opIntersection:
			return &sexpIntervals{set: x.set.Intersection(y.set)}, nil
		case opDifference:
			return &sexpIntervals{set: x.set.Difference(y.set)}, nil
		default:
			return &sexpIntervals{set: x.set.Xor(y.set)}, nil
		}

	case *sexpSubLine:
		y, err := toSubLine(b)
		if err != nil {
			return nil, err
		}
		var fn = x.s.Union
		switch op {
		case opIntersection:
			fn = x.s.IntersectionWith
		case opDifference:
			fn = x.s.Difference
		case opXor:
			fn = x.s.Xor
		}
		res, err := fn(y)
		if err != nil {
			return nil, err
		}
		return &sexpSubLine{s: res}, nil
	}
	return nil, fmt.Errorf("unsupported operand %T (%s)", a, a.SexpString(nil))
}
