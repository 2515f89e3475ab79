package scene

import (
	"fmt"

	"github.com/chazu/bspgeom/pkg/euclidean/twod"
)

// Kind enumerates the types of objects held by a scene.
type Kind int

const (
	KindRegion  Kind = iota // planar region
	KindSegment             // sub-line
)

func (k Kind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Object is a named value in the scene. Exactly one of Region and Sub is
// meaningful, selected by Kind.
type Object struct {
	Name   string
	Kind   Kind
	Region twod.Region
	Sub    *twod.SubLine
	Order  int // definition order, starting at 0
}

// Summary renders a one-line description of the object.
func (o *Object) Summary() string {
	switch o.Kind {
	case KindRegion:
		r := o.Region
		if r.IsEmpty() {
			return fmt.Sprintf("region %q: empty", o.Name)
		}
		if !r.IsBounded() {
			return fmt.Sprintf("region %q: unbounded perimeter=%g", o.Name, r.BoundarySize())
		}
		return fmt.Sprintf("region %q: area=%g perimeter=%g loops=%d",
			o.Name, r.Size(), r.BoundarySize(), len(r.Loops()))
	case KindSegment:
		if o.Sub == nil {
			return fmt.Sprintf("segment %q: no sub-line", o.Name)
		}
		segs := o.Sub.Segments()
		if len(segs) == 0 {
			return fmt.Sprintf("segment %q: empty", o.Name)
		}
		return fmt.Sprintf("segment %q: length=%g pieces=%d from %s to %s",
			o.Name, o.Sub.Size(), len(segs), segs[0].Start, segs[len(segs)-1].End)
	}
	return fmt.Sprintf("%s %q", o.Kind, o.Name)
}
