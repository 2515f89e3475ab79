// Package partition implements Binary Space Partitioning regions over an
// arbitrary Euclidean space.
//
// The space is supplied through the Hyperplane and SubHyperplane interfaces,
// parameterized by the point type. Region trees, the boolean algebra and
// boundary extraction are written once here and shared by every dimension.
//
// Sign convention: for every cut the minus side is inside and the plus side
// is outside. FromHyperplanes therefore returns the intersection of the
// minus half-spaces of its arguments.
package partition

import (
	"fmt"

	"github.com/chazu/bspgeom/pkg/precision"
)

// HyperplaneLocation classifies a point relative to a hyperplane.
type HyperplaneLocation int

const (
	On HyperplaneLocation = iota
	Plus
	Minus
)

func (l HyperplaneLocation) String() string {
	switch l {
	case On:
		return "on"
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	default:
		return fmt.Sprintf("HyperplaneLocation(%d)", int(l))
	}
}

// Side describes where a sub-hyperplane lies relative to a hyperplane.
type Side int

const (
	SidePlus  Side = iota // entirely on the plus side
	SideMinus             // entirely on the minus side
	SideBoth              // crosses the hyperplane
	SideHyper             // lies on the hyperplane
)

func (s Side) String() string {
	switch s {
	case SidePlus:
		return "plus"
	case SideMinus:
		return "minus"
	case SideBoth:
		return "both"
	case SideHyper:
		return "hyper"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Location classifies a point relative to a region.
type Location int

const (
	Inside Location = iota
	Outside
	Boundary
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// Hyperplane is an oriented hyperplane of the space of P: a point in 1-D,
// a line in 2-D. The positive offset side is the plus side.
type Hyperplane[P any] interface {
	// Offset returns the signed distance of p from the hyperplane.
	Offset(p P) float64
	// Classify places p on, above or below the hyperplane within tolerance.
	Classify(p P) HyperplaneLocation
	// Project returns the orthogonal projection of p onto the hyperplane.
	Project(p P) P
	// Reverse returns the same hyperplane with its sides swapped.
	Reverse() Hyperplane[P]
	// SameAs reports whether both hyperplanes coincide, ignoring orientation.
	SameAs(other Hyperplane[P]) bool
	// SameOrientationAs reports whether both plus sides face the same way.
	SameOrientationAs(other Hyperplane[P]) bool
	// WholeHyperplane returns a sub-hyperplane covering the entire hyperplane.
	WholeHyperplane() SubHyperplane[P]
	Precision() precision.Context
}

// SubHyperplane is a subset of a hyperplane. A nil SubHyperplane stands for
// the empty subset.
type SubHyperplane[P any] interface {
	Hyperplane() Hyperplane[P]
	IsEmpty() bool
	// Split cuts the receiver by h. Parts that would be empty are nil.
	Split(h Hyperplane[P]) SplitResult[P]
	// Reunite returns the union of two sub-hyperplanes of the same
	// hyperplane. It fails with ErrIncompatibleHyperplanes otherwise.
	Reunite(other SubHyperplane[P]) (SubHyperplane[P], error)
}

// SplitResult holds the parts of a split sub-hyperplane. A nil part is empty.
type SplitResult[P any] struct {
	Plus  SubHyperplane[P]
	Minus SubHyperplane[P]
}

// Side reports the relative position that produced the split.
func (r SplitResult[P]) Side() Side {
	plus := present(r.Plus)
	minus := present(r.Minus)
	switch {
	case plus && minus:
		return SideBoth
	case plus:
		return SidePlus
	case minus:
		return SideMinus
	default:
		return SideHyper
	}
}

func present[P any](s SubHyperplane[P]) bool {
	return s != nil && !s.IsEmpty()
}
