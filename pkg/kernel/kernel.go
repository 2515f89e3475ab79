// Package kernel defines the abstract geometry kernel interface used to
// turn bounded planar regions into solids and triangle meshes. The kernel
// abstraction allows swapping backends without changing the rest of the
// system.
package kernel

import (
	"errors"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
)

var (
	// ErrUnbounded is returned when asked to build a solid from a region
	// with no finite, non-empty extent.
	ErrUnbounded = errors.New("kernel: region is unbounded or empty")

	// ErrDegenerate is returned for prisms with fewer than three vertices or
	// a non-positive height.
	ErrDegenerate = errors.New("kernel: degenerate solid")
)

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Prism extrudes the simple polygon with the given vertices from z=0
	// to z=height. Vertex order does not matter.
	Prism(vertices []twod.Point, height float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
