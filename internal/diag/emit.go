package diag

import (
	"fmt"

	"github.com/sirkon/sysfirst/internal/ordering"
	"github.com/sirkon/sysfirst/internal/usorules"
)

// FromViolation maps one ordering violation to its diagnostic, 1:1.
// The message carries exactly two substitution arguments.
func FromViolation(sev Severity, v ordering.Violation) Diagnostic {
	rule := usorules.USO010SystemFirst

	return Diagnostic{
		Severity: sev,
		Rule:     rule,
		Message:  fmt.Sprintf(rule.MessageTemplate(), v.Offending, v.ExpectedBefore),
		Span:     v.Span,
	}
}

// EmitViolations reports every violation of one scan in order.
func EmitViolations(r Reporter, sev Severity, vs []ordering.Violation) {
	for _, v := range vs {
		r.Report(FromViolation(sev, v))
	}
}
