// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per bounded region, extruded to a
// slab.
package tessellate

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/kernel"
	"github.com/chazu/bspgeom/pkg/scene"
)

// Tessellate produces one mesh per bounded, non-empty region of s, in
// definition order, extruded to the given height. Unbounded and empty
// regions are skipped; segments have no volume and are ignored. The
// tessellator is read-only and never mutates the scene.
func Tessellate(s *scene.Scene, k kernel.Kernel, height float64) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, o := range s.Regions() {
		if o.Region.IsEmpty() || !o.Region.IsBounded() {
			continue
		}
		mesh, err := Region(o.Region, k, height)
		if err != nil {
			return nil, fmt.Errorf("tessellate: region %q: %w", o.Name, err)
		}
		mesh.Name = o.Name
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Region extrudes a single region. It fails with kernel.ErrUnbounded when
// the region has no finite, non-empty extent.
func Region(r twod.Region, k kernel.Kernel, height float64) (*kernel.Mesh, error) {
	solid, err := Solid(r, k, height)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed: %w", err)
	}
	return mesh, nil
}

// Solid builds the extruded solid of r. Loops are applied from the largest
// to the smallest enclosed area: counter-clockwise loops add material and
// clockwise loops (holes) remove it, so islands inside holes survive.
func Solid(r twod.Region, k kernel.Kernel, height float64) (kernel.Solid, error) {
	if r.IsEmpty() || !r.IsBounded() {
		return nil, kernel.ErrUnbounded
	}
	loops := lo.Filter(r.Loops(), func(l twod.Loop, _ int) bool {
		return l.Closed && len(l.Vertices) >= 3
	})
	if len(loops) == 0 {
		return nil, kernel.ErrUnbounded
	}
	slices.SortStableFunc(loops, func(a, b twod.Loop) int {
		return cmpDesc(math.Abs(a.SignedArea()), math.Abs(b.SignedArea()))
	})

	var solid kernel.Solid
	for i, l := range loops {
		prism, err := k.Prism(l.Vertices, height)
		if err != nil {
			return nil, fmt.Errorf("loop %d: %w", i, err)
		}
		hole := l.SignedArea() < 0
		switch {
		case solid == nil && hole:
			return nil, fmt.Errorf("loop %d: outermost loop is a hole: %w", i, kernel.ErrUnbounded)
		case solid == nil:
			solid = prism
		case hole:
			solid = k.Difference(solid, prism)
		default:
			solid = k.Union(solid, prism)
		}
	}
	return solid, nil
}

func cmpDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
