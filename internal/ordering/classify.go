// Package ordering implements the System-first check over one scope's
// directive list: System-group using directives must precede directives
// for any other namespace.
package ordering

import (
	"github.com/sirkon/sysfirst/internal/directive"
)

// systemNamespace is the reserved namespace group name. The comparison
// is ordinal and case-sensitive, `system` or `SystemX` never match.
const systemNamespace = "System"

// ComparisonName extracts the name a directive is classified by: its
// first written identifier with a leading `qualifier::` marker skipped.
// For an alias directive that is the alias name, not the target path.
// ok is false for a malformed directive with no identifiers at all.
func ComparisonName(d directive.Directive) (name string, ok bool) {
	if d.HasAlias {
		if d.AliasName == "" {
			return "", false
		}
		return d.AliasName, true
	}

	if len(d.Segments) == 0 {
		return "", false
	}

	return d.Segments[0], true
}

// IsSystemGroup reports whether a comparison name belongs to the
// System namespace group.
func IsSystemGroup(name string) bool {
	return name == systemNamespace
}
