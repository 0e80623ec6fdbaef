package ordering

import (
	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/source"
)

// Violation is one detected ordering defect: the System-group directive
// named Offending showed up after the non-System directive named
// ExpectedBefore. Violations are transient, they are turned into
// diagnostics right after a scan.
type Violation struct {
	Offending      string
	ExpectedBefore string
	Span           source.Span
}

// Scan walks the scope's directive list once, left to right, and
// collects every System-first violation in source order. It is a pure
// function: no state survives a call, the scope is read-only.
//
// The first out-of-order position fixes the anchor: every System-group
// directive after it is out of order relative to that same offender
// (they would all have to move above it), so all violations of a scope
// name one and the same expected predecessor. Re-deriving the anchor
// per violation would only produce inconsistent messages.
//
// Alias and static directives are never reported themselves, yet they
// stay visible as raw predecessors. The predecessor check consults the
// comparison name and the static flag only. An alias whose local name
// reads exactly "System" therefore passes for a legitimate System
// predecessor: recorded behavior, kept as is.
func Scan(scope *directive.Scope) []Violation {
	var (
		anchor   string
		anchored bool
		out      []Violation
	)

	ds := scope.Directives

	// The first directive of a scope can never violate the rule.
	for i := 1; i < len(ds); i++ {
		d := ds[i]
		if d.HasAlias || d.IsStatic {
			continue
		}

		name, ok := ComparisonName(d)
		if !ok || !IsSystemGroup(name) {
			continue
		}

		if anchored {
			out = append(out, Violation{
				Offending:      d.DisplayName(),
				ExpectedBefore: anchor,
				Span:           d.Span,
			})
			continue
		}

		prev := ds[i-1]
		prevName, ok := ComparisonName(prev)
		if ok && IsSystemGroup(prevName) && !prev.IsStatic {
			// In order so far.
			continue
		}

		anchor = prev.DisplayName()
		anchored = true
		out = append(out, Violation{
			Offending:      d.DisplayName(),
			ExpectedBefore: anchor,
			Span:           d.Span,
		})
	}

	return out
}
