package partition

// Region is a subset of space represented as a BSP tree. The zero value is
// the empty region. Regions are immutable and safe for concurrent use.
type Region[P any] struct {
	root *node[P]
}

// Full returns the region covering the whole space.
func Full[P any]() Region[P] {
	return Region[P]{root: leaf[P](true)}
}

// Empty returns the empty region.
func Empty[P any]() Region[P] {
	return Region[P]{root: leaf[P](false)}
}

// FromHyperplanes returns the convex region lying on the minus side of
// every given hyperplane. No hyperplanes gives the full space; incompatible
// half-spaces give the empty region.
func FromHyperplanes[P any](hyperplanes ...Hyperplane[P]) Region[P] {
	r := Full[P]()
	for _, h := range hyperplanes {
		r = Intersection(r, halfSpace(h))
	}
	return r
}

func halfSpace[P any](h Hyperplane[P]) Region[P] {
	return Region[P]{root: &node[P]{
		cut:   h.WholeHyperplane(),
		plus:  leaf[P](false),
		minus: leaf[P](true),
	}}
}

func (r Region[P]) tree() *node[P] {
	if r.root == nil {
		return leaf[P](false)
	}
	return r.root
}

// CheckPoint classifies p as inside, outside or on the boundary. A point
// lying on a cut is inside (outside) only if both sides of the cut agree.
func (r Region[P]) CheckPoint(p P) Location {
	return checkPoint(r.tree(), p)
}

func checkPoint[P any](n *node[P], p P) Location {
	if n.isLeaf() {
		if n.inside {
			return Inside
		}
		return Outside
	}
	switch n.cut.Hyperplane().Classify(p) {
	case Plus:
		return checkPoint(n.plus, p)
	case Minus:
		return checkPoint(n.minus, p)
	}
	plus := checkPoint(n.plus, p)
	if minus := checkPoint(n.minus, p); plus != minus {
		return Boundary
	}
	return plus
}

// IsEmpty reports whether the tree has no inside leaf.
func (r Region[P]) IsEmpty() bool {
	return !Fold(r,
		func(inside bool) bool { return inside },
		func(_ SubHyperplane[P], plus, minus bool) bool { return plus || minus })
}

// IsFull reports whether the tree has no outside leaf.
func (r Region[P]) IsFull() bool {
	return Fold(r,
		func(inside bool) bool { return inside },
		func(_ SubHyperplane[P], plus, minus bool) bool { return plus && minus })
}

// Depth returns the length of the longest root-to-leaf path. A single leaf
// has depth 0.
func (r Region[P]) Depth() int {
	return Fold(r,
		func(bool) int { return 0 },
		func(_ SubHyperplane[P], plus, minus int) int { return 1 + max(plus, minus) })
}

// NodeCount returns the number of nodes, leaves included.
func (r Region[P]) NodeCount() int {
	return Fold(r,
		func(bool) int { return 1 },
		func(_ SubHyperplane[P], plus, minus int) int { return 1 + plus + minus })
}

// Simplify returns an equivalent region where every internal node whose
// children are leaves with the same flag has been collapsed, bottom-up.
func (r Region[P]) Simplify() Region[P] {
	return Region[P]{root: fold(r.tree(),
		func(inside bool) *node[P] { return leaf[P](inside) },
		internal[P])}
}
