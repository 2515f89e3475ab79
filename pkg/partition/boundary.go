package partition

// Facet is one piece of a region boundary. PlusOutside is true when the
// outside of the region lies on the plus side of the facet's hyperplane, so
// the inside is on its minus side.
type Facet[P any] struct {
	Sub         SubHyperplane[P]
	PlusOutside bool
}

// characterization splits a sub-hyperplane into the pieces that touch
// inside leaves and those that touch outside leaves of a subtree.
type characterization[P any] struct {
	inside  []SubHyperplane[P]
	outside []SubHyperplane[P]
}

func characterize[P any](n *node[P], sub SubHyperplane[P]) characterization[P] {
	var c characterization[P]
	c.walk(n, sub)
	return c
}

func characterizeAll[P any](n *node[P], subs []SubHyperplane[P]) characterization[P] {
	var c characterization[P]
	for _, s := range subs {
		c.walk(n, s)
	}
	return c
}

func (c *characterization[P]) walk(n *node[P], sub SubHyperplane[P]) {
	if !present(sub) {
		return
	}
	if n.isLeaf() {
		if n.inside {
			c.inside = append(c.inside, sub)
		} else {
			c.outside = append(c.outside, sub)
		}
		return
	}
	parts := sub.Split(n.cut.Hyperplane())
	switch parts.Side() {
	case SideMinus:
		c.walk(n.minus, sub)
	case SideBoth:
		c.walk(n.plus, parts.Plus)
		c.walk(n.minus, parts.Minus)
	default:
		// Coplanar pieces are attributed to the plus child.
		c.walk(n.plus, sub)
	}
}

// Boundary returns the boundary of the region as a list of facets. Each
// internal node contributes the part of its cut that separates an inside
// cell from an outside cell.
func (r Region[P]) Boundary() []Facet[P] {
	var facets []Facet[P]
	var visit func(n *node[P])
	visit = func(n *node[P]) {
		if n.isLeaf() {
			return
		}
		plusChar := characterize(n.plus, n.cut)
		if len(plusChar.outside) > 0 {
			minusChar := characterizeAll(n.minus, plusChar.outside)
			for _, s := range reunite(minusChar.inside) {
				facets = append(facets, Facet[P]{Sub: s, PlusOutside: true})
			}
		}
		if len(plusChar.inside) > 0 {
			minusChar := characterizeAll(n.minus, plusChar.inside)
			for _, s := range reunite(minusChar.outside) {
				facets = append(facets, Facet[P]{Sub: s, PlusOutside: false})
			}
		}
		visit(n.plus)
		visit(n.minus)
	}
	visit(r.tree())
	return facets
}

// reunite merges pieces of one cut into as few sub-hyperplanes as possible.
func reunite[P any](pieces []SubHyperplane[P]) []SubHyperplane[P] {
	if len(pieces) == 0 {
		return nil
	}
	acc := pieces[0]
	var rest []SubHyperplane[P]
	for _, p := range pieces[1:] {
		merged, err := acc.Reunite(p)
		if err != nil {
			rest = append(rest, p)
			continue
		}
		acc = merged
	}
	return append([]SubHyperplane[P]{acc}, rest...)
}
