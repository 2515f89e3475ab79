package partition

// cellStep records one ancestor cut of a cell and which side the cell is on.
type cellStep[P any] struct {
	hyperplane Hyperplane[P]
	plusSide   bool
}

// extend returns a copy of path with one more step; the original backing
// array is never shared between siblings.
func extend[P any](path []cellStep[P], h Hyperplane[P], plusSide bool) []cellStep[P] {
	return append(path[:len(path):len(path)], cellStep[P]{hyperplane: h, plusSide: plusSide})
}

// fitToCell clips sub to the convex cell described by path. It returns nil
// when nothing of sub lies strictly inside the cell.
func fitToCell[P any](sub SubHyperplane[P], path []cellStep[P]) SubHyperplane[P] {
	for _, step := range path {
		if sub == nil {
			return nil
		}
		parts := sub.Split(step.hyperplane)
		if step.plusSide {
			sub = parts.Plus
		} else {
			sub = parts.Minus
		}
	}
	if !present(sub) {
		return nil
	}
	return sub
}

// splitTree cuts the tree t by sub, a sub-hyperplane lying in t's cell, and
// returns the parts of t on the plus and minus side of sub's hyperplane.
func splitTree[P any](t *node[P], sub SubHyperplane[P]) (plus, minus *node[P]) {
	if t.isLeaf() {
		return t, t
	}
	sHyper := sub.Hyperplane()
	subParts := sub.Split(t.cut.Hyperplane())

	switch subParts.Side() {
	case SidePlus:
		sp, sm := splitTree(t.plus, sub)
		if t.cut.Split(sHyper).Side() == SidePlus {
			return internal(t.cut, sp, t.minus), sm
		}
		return sp, internal(t.cut, sm, t.minus)

	case SideMinus:
		mp, mm := splitTree(t.minus, sub)
		if t.cut.Split(sHyper).Side() == SidePlus {
			return internal(t.cut, t.plus, mp), mm
		}
		return mp, internal(t.cut, t.plus, mm)

	case SideBoth:
		cutParts := t.cut.Split(sHyper)
		pp, pm := splitTree(t.plus, subParts.Plus)
		mp, mm := splitTree(t.minus, subParts.Minus)
		return internal(orCut(cutParts.Plus, t.cut), pp, mp),
			internal(orCut(cutParts.Minus, t.cut), pm, mm)

	default:
		if t.cut.Hyperplane().SameOrientationAs(sHyper) {
			return t.plus, t.minus
		}
		return t.minus, t.plus
	}
}

func orCut[P any](part, fallback SubHyperplane[P]) SubHyperplane[P] {
	if present(part) {
		return part
	}
	return fallback
}

// leafMerger combines a leaf of one operand with the matching subtree of the
// other. leafFromA tells which operand the leaf came from.
type leafMerger[P any] func(leaf, tree *node[P], leafFromA bool) *node[P]

// merge grafts b into a: a's cuts are kept, b is split along them, and the
// leaf rule decides each cell where one side bottoms out.
func merge[P any](a, b *node[P], rule leafMerger[P], path []cellStep[P]) *node[P] {
	if a.isLeaf() {
		return rule(a, b, true)
	}
	if b.isLeaf() {
		return rule(b, a, false)
	}

	bp, bm := splitTree(b, a.cut)
	h := a.cut.Hyperplane()
	plus := merge(a.plus, bp, rule, extend(path, h, true))
	minus := merge(a.minus, bm, rule, extend(path, h, false))

	cut := fitToCell(h.WholeHyperplane(), path)
	if cut == nil {
		cut = a.cut
	}
	return internal(cut, plus, minus)
}

func unionLeaf[P any](l, tree *node[P], _ bool) *node[P] {
	if l.inside {
		return l
	}
	return tree
}

func intersectionLeaf[P any](l, tree *node[P], _ bool) *node[P] {
	if l.inside {
		return tree
	}
	return l
}

func xorLeaf[P any](l, tree *node[P], _ bool) *node[P] {
	if l.inside {
		return complementTree(tree)
	}
	return tree
}

func differenceLeaf[P any](l, tree *node[P], leafFromA bool) *node[P] {
	if leafFromA {
		if l.inside {
			return complementTree(tree)
		}
		return l
	}
	if l.inside {
		return leaf[P](false)
	}
	return tree
}

func combine[P any](a, b Region[P], rule leafMerger[P]) Region[P] {
	return Region[P]{root: merge(a.tree(), b.tree(), rule, nil)}
}

// Union returns the points inside a or b.
func Union[P any](a, b Region[P]) Region[P] {
	return combine(a, b, unionLeaf[P])
}

// Intersection returns the points inside both a and b.
func Intersection[P any](a, b Region[P]) Region[P] {
	return combine(a, b, intersectionLeaf[P])
}

// Difference returns the points inside a and not inside b.
func Difference[P any](a, b Region[P]) Region[P] {
	return combine(a, b, differenceLeaf[P])
}

// Xor returns the points inside exactly one of a and b.
func Xor[P any](a, b Region[P]) Region[P] {
	return combine(a, b, xorLeaf[P])
}

// Complement returns the points not inside r. The boundary is unchanged.
func Complement[P any](r Region[P]) Region[P] {
	return Region[P]{root: complementTree(r.tree())}
}
