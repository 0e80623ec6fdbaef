package ordering_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/ordering"
	"github.com/sirkon/sysfirst/internal/source"
)

// dir builds a directive out of its written form:
//
//	"System.Linq", "global::System", "static System.Console", "X = System.Linq"
func dir(written string) directive.Directive {
	var d directive.Directive

	rest := written
	if name, target, ok := strings.Cut(rest, " = "); ok {
		d.HasAlias = true
		d.AliasName = name
		rest = target
	}
	if after, ok := strings.CutPrefix(rest, "static "); ok {
		d.IsStatic = true
		rest = after
	}

	d.RawName = rest
	if _, path, ok := strings.Cut(rest, "::"); ok {
		rest = path
	}
	if rest != "" {
		d.Segments = strings.Split(rest, ".")
	}

	return d
}

func spanAt(i int) source.Span {
	return source.Span{File: 1, Start: uint32(i * 10), End: uint32(i*10 + 5)}
}

func scope(directives ...directive.Directive) *directive.Scope {
	for i := range directives {
		directives[i].Span = spanAt(i)
	}

	return &directive.Scope{
		Kind:       directive.ScopeCompilationUnit,
		Directives: directives,
	}
}

func violation(offending, before string, index int) ordering.Violation {
	return ordering.Violation{
		Offending:      offending,
		ExpectedBefore: before,
		Span:           spanAt(index),
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		scope *directive.Scope
		want  []ordering.Violation
	}{
		{
			name:  "empty list",
			scope: scope(),
			want:  nil,
		},
		{
			name:  "single directive never offends",
			scope: scope(dir("System")),
			want:  nil,
		},
		{
			name:  "system block first is fine",
			scope: scope(dir("System"), dir("System.Linq"), dir("MyApp")),
			want:  nil,
		},
		{
			name:  "system after other",
			scope: scope(dir("MyApp"), dir("System")),
			want: []ordering.Violation{
				violation("System", "MyApp", 1),
			},
		},
		{
			name:  "anchor sticks for the whole scope",
			scope: scope(dir("MyApp"), dir("System"), dir("System.Linq"), dir("Other")),
			want: []ordering.Violation{
				violation("System", "MyApp", 1),
				violation("System.Linq", "MyApp", 2),
			},
		},
		{
			name:  "alias is exempt yet stays a raw predecessor",
			scope: scope(dir("MyApp"), dir("X = System.Linq"), dir("System")),
			want: []ordering.Violation{
				violation("System", "System.Linq", 2),
			},
		},
		{
			name:  "static is exempt yet stays a raw predecessor",
			scope: scope(dir("System"), dir("static System.Console"), dir("Other"), dir("System.Text")),
			want: []ordering.Violation{
				violation("System.Text", "Other", 3),
			},
		},
		{
			name:  "static system predecessor does not legitimize",
			scope: scope(dir("System"), dir("static System.Console"), dir("System.Text")),
			want: []ordering.Violation{
				violation("System.Text", "System.Console", 2),
			},
		},
		{
			name:  "alias named System passes for a legitimate predecessor",
			scope: scope(dir("System = MyApp.Shims"), dir("System.Text")),
			want:  nil,
		},
		{
			name:  "lowercase system is not the System group",
			scope: scope(dir("MyApp"), dir("system")),
			want:  nil,
		},
		{
			name:  "SystemX is not the System group",
			scope: scope(dir("MyApp"), dir("SystemX"), dir("SystemX.Util")),
			want:  nil,
		},
		{
			name:  "lowercase system predecessor offends",
			scope: scope(dir("system"), dir("System")),
			want: []ordering.Violation{
				violation("System", "system", 1),
			},
		},
		{
			name:  "global qualifier is ignored for classification and display",
			scope: scope(dir("global::System"), dir("MyApp"), dir("global::System.Text")),
			want: []ordering.Violation{
				violation("System.Text", "MyApp", 2),
			},
		},
		{
			name:  "qualified predecessor still counts as system",
			scope: scope(dir("global::System"), dir("System.Text")),
			want:  nil,
		},
		{
			name:  "alias directive itself is never reported",
			scope: scope(dir("MyApp"), dir("X = System")),
			want:  nil,
		},
		{
			name:  "static directive itself is never reported",
			scope: scope(dir("MyApp"), dir("static System.Console")),
			want:  nil,
		},
		{
			name:  "malformed directive is silently excluded",
			scope: scope(dir("MyApp"), dir("")),
			want:  nil,
		},
		{
			name:  "non-system directives never offend",
			scope: scope(dir("Zoo"), dir("Aardvark"), dir("MyApp.Core")),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ordering.Scan(tt.scope)
			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "violations", tt.want, got)
			}

			// The scan is a pure function: a second pass over the very
			// same scope yields the identical sequence.
			again := ordering.Scan(tt.scope)
			if !reflect.DeepEqual(got, again) {
				deepequal.SideBySide(t, "violations of a repeated scan", got, again)
			}
		})
	}
}

func TestScanFirstDirectiveNeverOffends(t *testing.T) {
	sc := scope(dir("System"), dir("MyApp"), dir("System.Text"))

	for _, v := range ordering.Scan(sc) {
		if v.Span == spanAt(0) {
			t.Fatalf("the first directive of a scope was reported as offending: %v", v)
		}
	}
}

func TestScanAnchorIsMonotonic(t *testing.T) {
	sc := scope(
		dir("MyApp"),
		dir("System"),
		dir("Zulu"),
		dir("System.Linq"),
		dir("System.Text"),
	)

	got := ordering.Scan(sc)
	if len(got) < 2 {
		t.Fatalf("expected multiple violations, got %d", len(got))
	}
	for _, v := range got {
		if v.ExpectedBefore != got[0].ExpectedBefore {
			t.Fatalf(
				"anchor changed mid-scope: %q vs %q",
				got[0].ExpectedBefore, v.ExpectedBefore,
			)
		}
	}
}

func TestComparisonName(t *testing.T) {
	tests := []struct {
		name   string
		d      directive.Directive
		want   string
		wantOK bool
	}{
		{name: "plain", d: dir("System.Collections.Generic"), want: "System", wantOK: true},
		{name: "qualified", d: dir("global::System.Text"), want: "System", wantOK: true},
		{name: "alias classifies by its local name", d: dir("X = System.Linq"), want: "X", wantOK: true},
		{name: "malformed", d: dir(""), want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ordering.ComparisonName(tt.d)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsSystemGroup(t *testing.T) {
	for name, want := range map[string]bool{
		"System":  true,
		"system":  false,
		"SystemX": false,
		"":        false,
	} {
		if got := ordering.IsSystemGroup(name); got != want {
			t.Errorf("IsSystemGroup(%q) = %v, want %v", name, got, want)
		}
	}
}
