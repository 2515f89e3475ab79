package partition

// node is the tagged tree variant: a leaf when cut is nil, an internal node
// otherwise. Nodes are never modified once built, so subtrees are shared
// freely between trees.
type node[P any] struct {
	cut    SubHyperplane[P]
	plus   *node[P]
	minus  *node[P]
	inside bool
}

func (n *node[P]) isLeaf() bool {
	return n.cut == nil
}

func leaf[P any](inside bool) *node[P] {
	return &node[P]{inside: inside}
}

// internal builds an internal node, condensing it to a single leaf when both
// children are leaves with the same flag.
func internal[P any](cut SubHyperplane[P], plus, minus *node[P]) *node[P] {
	if plus.isLeaf() && minus.isLeaf() && plus.inside == minus.inside {
		return plus
	}
	return &node[P]{cut: cut, plus: plus, minus: minus}
}

// Fold reduces a region's tree bottom-up. onLeaf is called for each leaf
// and onInternal for each internal node with the folded children.
func Fold[P, T any](r Region[P], onLeaf func(inside bool) T, onInternal func(cut SubHyperplane[P], plus, minus T) T) T {
	return fold(r.tree(), onLeaf, onInternal)
}

func fold[P, T any](n *node[P], onLeaf func(bool) T, onInternal func(SubHyperplane[P], T, T) T) T {
	if n.isLeaf() {
		return onLeaf(n.inside)
	}
	return onInternal(n.cut, fold(n.plus, onLeaf, onInternal), fold(n.minus, onLeaf, onInternal))
}

func complementTree[P any](n *node[P]) *node[P] {
	return fold(n,
		func(inside bool) *node[P] { return leaf[P](!inside) },
		func(cut SubHyperplane[P], plus, minus *node[P]) *node[P] {
			return &node[P]{cut: cut, plus: plus, minus: minus}
		})
}

// Transform returns a region with the same structure as r where every cut
// has been replaced by mapCut(cut). The mapping must send the plus side of
// each cut to the plus side of its image, so that leaf flags keep their
// meaning.
func Transform[P, Q any](r Region[P], mapCut func(SubHyperplane[P]) SubHyperplane[Q]) Region[Q] {
	return Region[Q]{root: fold(r.tree(),
		func(inside bool) *node[Q] { return leaf[Q](inside) },
		func(cut SubHyperplane[P], plus, minus *node[Q]) *node[Q] {
			return &node[Q]{cut: mapCut(cut), plus: plus, minus: minus}
		})}
}
