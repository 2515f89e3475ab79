package scene

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/chazu/bspgeom/pkg/crossings"
	"github.com/chazu/bspgeom/pkg/euclidean/twod"
	"github.com/chazu/bspgeom/pkg/precision"
)

// Scene is an ordered registry of named regions and segments.
type Scene struct {
	objects   []*Object
	index     map[string]int
	redefined []string
	precision precision.Context
}

// New creates an empty scene whose objects share the given tolerance.
func New(ctx precision.Context) *Scene {
	return &Scene{
		index:     make(map[string]int),
		precision: ctx,
	}
}

func (s *Scene) Precision() precision.Context {
	return s.precision
}

// DefineRegion binds name to r. Redefining a name replaces the earlier
// object in place and is reported by Validate as a warning.
func (s *Scene) DefineRegion(name string, r twod.Region) *Object {
	return s.define(&Object{Name: name, Kind: KindRegion, Region: r})
}

// DefineSegment binds name to sub.
func (s *Scene) DefineSegment(name string, sub *twod.SubLine) *Object {
	return s.define(&Object{Name: name, Kind: KindSegment, Sub: sub})
}

func (s *Scene) define(o *Object) *Object {
	if i, ok := s.index[o.Name]; ok {
		o.Order = i
		s.objects[i] = o
		s.redefined = append(s.redefined, o.Name)
		return o
	}
	o.Order = len(s.objects)
	s.index[o.Name] = o.Order
	s.objects = append(s.objects, o)
	return o
}

// Lookup returns the object with the given name, or nil.
func (s *Scene) Lookup(name string) *Object {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.objects[i]
}

// MustLookup returns the object with the given name, or panics.
func (s *Scene) MustLookup(name string) *Object {
	o := s.Lookup(name)
	if o == nil {
		panic(fmt.Sprintf("scene: no object named %q", name))
	}
	return o
}

// Objects returns every object in definition order.
func (s *Scene) Objects() []*Object {
	return append([]*Object(nil), s.objects...)
}

// Regions returns the region objects in definition order.
func (s *Scene) Regions() []*Object {
	return lo.Filter(s.objects, func(o *Object, _ int) bool { return o.Kind == KindRegion })
}

// Segments returns the segment objects in definition order.
func (s *Scene) Segments() []*Object {
	return lo.Filter(s.objects, func(o *Object, _ int) bool { return o.Kind == KindSegment })
}

// Names returns the object names in definition order.
func (s *Scene) Names() []string {
	return lo.Map(s.objects, func(o *Object, _ int) string { return o.Name })
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// SegmentCrossing is a point where two named segments cross.
type SegmentCrossing struct {
	A, B  string
	Point twod.Point
}

// Crossings returns the pairwise crossings of the named segments. Each pair
// is reported once, with A defined before B.
func (s *Scene) Crossings(strict bool) ([]SegmentCrossing, error) {
	segs := s.Segments()
	subs := lo.Map(segs, func(o *Object, _ int) *twod.SubLine { return o.Sub })
	idx, err := crossings.NewIndex(s.precision, subs...)
	if err != nil {
		return nil, fmt.Errorf("scene: crossings: %w", err)
	}
	var out []SegmentCrossing
	for i, o := range segs {
		hits, err := idx.Query(o.Sub, strict)
		if err != nil {
			return nil, fmt.Errorf("scene: crossings of %q: %w", o.Name, err)
		}
		for _, h := range hits {
			if h.Index <= i {
				continue
			}
			out = append(out, SegmentCrossing{A: o.Name, B: segs[h.Index].Name, Point: h.Point})
		}
	}
	return out, nil
}
