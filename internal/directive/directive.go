package directive

import (
	"fmt"
	"strings"

	"github.com/sirkon/sysfirst/internal/source"
)

// Directive is the normalized view of a single using directive within
// one scope's ordered list.
type Directive struct {
	// Segments are the identifier tokens of the dotted namespace path,
	// with a leading `qualifier::` marker already stripped. Empty for
	// a malformed directive.
	Segments []string

	// RawName is the namespace path as written, including the qualifier
	// prefix when present (e.g. "global::System.Collections"). The alias
	// name of an alias directive is not a part of it.
	RawName string

	// AliasName is the local alias of a `using X = …;` directive.
	AliasName string

	// HasAlias marks alias directives. Those are exempt from ordering checks.
	HasAlias bool

	// IsStatic marks `using static …;` directives. Also exempt.
	IsStatic bool

	// Span anchors a reported diagnostic.
	Span source.Span
}

// DisplayName is the directive name as it should appear in messages:
// the raw name with any leading `qualifier::` marker removed.
func (d Directive) DisplayName() string {
	if i := strings.Index(d.RawName, "::"); i >= 0 {
		return d.RawName[i+2:]
	}

	return d.RawName
}

func (d Directive) String() string {
	var b strings.Builder
	b.WriteString("using ")
	if d.IsStatic {
		b.WriteString("static ")
	}
	if d.HasAlias {
		b.WriteString(d.AliasName)
		b.WriteString(" = ")
	}
	b.WriteString(d.RawName)

	return b.String()
}

// ScopeKind tells what lexical region a scope represents.
type ScopeKind int

const (
	ScopeInvalid ScopeKind = iota

	// ScopeCompilationUnit is the top level of a file.
	ScopeCompilationUnit

	// ScopeNamespace is a namespace body, block or file-scoped.
	ScopeNamespace
)

var scopeKindValueMap = map[ScopeKind]string{
	ScopeCompilationUnit: "compilation-unit",
	ScopeNamespace:       "namespace",
}

func (k ScopeKind) String() string {
	v, ok := scopeKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *ScopeKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range scopeKindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown scope kind %q", text)
}

// Scope is one lexical region with its own independently ordered
// directive list. Order is exactly source order. Two scopes never
// share state: each is checked on its own.
type Scope struct {
	Kind ScopeKind

	// Name is the dotted namespace path as declared. Empty for the
	// compilation unit scope.
	Name string

	// Span covers the whole scope extent, declaration keyword included
	// for namespaces.
	Span source.Span

	Directives []Directive
}
