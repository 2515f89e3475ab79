package scene

import (
	"fmt"

	"github.com/samber/lo"
)

// Severity indicates whether a validation finding blocks further
// processing or is merely informational.
type Severity int

const (
	SeverityError   Severity = iota // blocks tessellation
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	Name     string // object name, empty for scene-level findings
	Message  string
	Severity Severity
}

func (f Finding) Error() string {
	if f.Name == "" {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] %q: %s", f.Severity, f.Name, f.Message)
}

// Result bundles blocking errors and advisory warnings.
type Result struct {
	Errors   []Finding
	Warnings []Finding
}

// OK reports whether validation found no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks the scene and returns its findings. It never mutates the
// scene.
func Validate(s *Scene) Result {
	var all []Finding
	all = append(all, validateNames(s)...)
	all = append(all, validateRegions(s)...)
	all = append(all, validateSegments(s)...)

	errs, warns := lo.FilterReject(all, func(f Finding, _ int) bool {
		return f.Severity == SeverityError
	})
	return Result{Errors: errs, Warnings: warns}
}

func validateNames(s *Scene) []Finding {
	var out []Finding
	for _, o := range s.objects {
		if o.Name == "" {
			out = append(out, Finding{
				Message:  fmt.Sprintf("%s #%d has an empty name", o.Kind, o.Order),
				Severity: SeverityError,
			})
		}
	}
	for _, name := range lo.Uniq(s.redefined) {
		out = append(out, Finding{
			Name:     name,
			Message:  "redefined; the last definition wins",
			Severity: SeverityWarning,
		})
	}
	return out
}

func validateRegions(s *Scene) []Finding {
	var out []Finding
	for _, o := range s.Regions() {
		switch {
		case o.Region.IsEmpty():
			out = append(out, Finding{Name: o.Name, Message: "region is empty", Severity: SeverityWarning})
		case o.Region.IsFull():
			out = append(out, Finding{Name: o.Name, Message: "region covers the whole plane", Severity: SeverityWarning})
		case !o.Region.IsBounded():
			out = append(out, Finding{Name: o.Name, Message: "region is unbounded and cannot be tessellated", Severity: SeverityWarning})
		}
	}
	return out
}

func validateSegments(s *Scene) []Finding {
	var out []Finding
	for _, o := range s.Segments() {
		if o.Sub == nil {
			out = append(out, Finding{Name: o.Name, Message: "segment has no sub-line", Severity: SeverityError})
			continue
		}
		if o.Sub.IsEmpty() {
			out = append(out, Finding{Name: o.Name, Message: "segment is empty", Severity: SeverityWarning})
		}
	}
	return out
}
