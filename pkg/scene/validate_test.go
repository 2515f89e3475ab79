package scene

import (
	"strings"
	"testing"

	"github.com/chazu/bspgeom/pkg/euclidean/oned"
	"github.com/chazu/bspgeom/pkg/euclidean/twod"
)

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name         string
		build        func(t *testing.T, s *Scene)
		wantErrors   int
		wantWarnings int
		wantContains string
	}{
		{
			name:  "bounded region",
			build: func(t *testing.T, s *Scene) { s.DefineRegion("sq", square(t, 0, 0, 1, 1)) },
		},
		{
			name:         "empty region",
			build:        func(t *testing.T, s *Scene) { s.DefineRegion("e", twod.Empty(ctx)) },
			wantWarnings: 1,
			wantContains: "empty",
		},
		{
			name:         "full region",
			build:        func(t *testing.T, s *Scene) { s.DefineRegion("f", twod.Full(ctx)) },
			wantWarnings: 1,
			wantContains: "whole plane",
		},
		{
			name: "half plane",
			build: func(t *testing.T, s *Scene) {
				l, err := twod.LineFromPoints(twod.Pt(0, 0), twod.Pt(1, 0), ctx)
				if err != nil {
					t.Fatal(err)
				}
				s.DefineRegion("h", twod.FromLines(ctx, l))
			},
			wantWarnings: 1,
			wantContains: "unbounded",
		},
		{
			name:         "empty name",
			build:        func(t *testing.T, s *Scene) { s.DefineRegion("", square(t, 0, 0, 1, 1)) },
			wantErrors:   1,
			wantContains: "empty name",
		},
		{
			name:         "nil sub-line",
			build:        func(t *testing.T, s *Scene) { s.DefineSegment("s", nil) },
			wantErrors:   1,
			wantContains: "no sub-line",
		},
		{
			name: "empty segment",
			build: func(t *testing.T, s *Scene) {
				sub := segment(t, 0, 0, 1, 0)
				s.DefineSegment("s", twod.NewSubLine(sub.Line(), oned.EmptySet(ctx)))
			},
			wantWarnings: 1,
			wantContains: "segment is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(ctx)
			tt.build(t, s)
			res := Validate(s)
			if len(res.Errors) != tt.wantErrors {
				t.Errorf("errors = %v, want %d", res.Errors, tt.wantErrors)
			}
			if len(res.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", res.Warnings, tt.wantWarnings)
			}
			if tt.wantContains == "" {
				return
			}
			all := append(append([]Finding(nil), res.Errors...), res.Warnings...)
			found := false
			for _, f := range all {
				if strings.Contains(f.Error(), tt.wantContains) {
					found = true
				}
			}
			if !found {
				t.Errorf("no finding contains %q: %v", tt.wantContains, all)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" {
		t.Errorf("SeverityError = %q", SeverityError.String())
	}
	if SeverityWarning.String() != "warning" {
		t.Errorf("SeverityWarning = %q", SeverityWarning.String())
	}
	if Severity(7).String() != "Severity(7)" {
		t.Errorf("Severity(7) = %q", Severity(7).String())
	}
}

func TestFindingError(t *testing.T) {
	f := Finding{Name: "sq", Message: "region is empty", Severity: SeverityWarning}
	if got, want := f.Error(), `[warning] "sq": region is empty`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	f.Name = ""
	if got, want := f.Error(), "[warning] region is empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
