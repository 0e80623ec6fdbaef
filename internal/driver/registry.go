package driver

import (
	"github.com/sirkon/sysfirst/internal/diag"
	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/ordering"
)

// ScopeHandler checks one scope and reports its findings. Handlers must
// be pure with respect to the scope: it is shared, read-only data.
type ScopeHandler func(sc *directive.Scope, r diag.Reporter)

// Registry maps scope kinds to the handlers observing them. A rule
// declares which scope kinds it wants and the driver dispatches every
// matching scope to it, there is no rule base type to inherit from.
type Registry map[directive.ScopeKind][]ScopeHandler

func NewRegistry() Registry {
	return Registry{}
}

// Register subscribes the handler to every listed scope kind.
func (r Registry) Register(h ScopeHandler, kinds ...directive.ScopeKind) {
	for _, k := range kinds {
		r[k] = append(r[k], h)
	}
}

func (r Registry) dispatch(sc *directive.Scope, rep diag.Reporter) {
	for _, h := range r[sc.Kind] {
		h(sc, rep)
	}
}

// SystemFirstHandler builds the handler of the System-first ordering
// rule reporting with the given severity.
func SystemFirstHandler(sev diag.Severity) ScopeHandler {
	return func(sc *directive.Scope, r diag.Reporter) {
		diag.EmitViolations(r, sev, ordering.Scan(sc))
	}
}

// DefaultRegistry wires every enabled rule to its scope kinds. The
// System-first rule observes both compilation units and namespace
// bodies with one and the same handler.
func DefaultRegistry(rules RulesGate) Registry {
	reg := NewRegistry()
	if rules.SystemFirstEnabled {
		reg.Register(
			SystemFirstHandler(rules.SystemFirstSeverity),
			directive.ScopeCompilationUnit,
			directive.ScopeNamespace,
		)
	}

	return reg
}

// RulesGate carries the per-rule decisions already made by the config
// layer. Rules themselves never read configuration.
type RulesGate struct {
	SystemFirstEnabled  bool
	SystemFirstSeverity diag.Severity
}
