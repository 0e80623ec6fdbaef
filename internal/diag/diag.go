package diag

import (
	"github.com/sirkon/sysfirst/internal/source"
	"github.com/sirkon/sysfirst/internal/usorules"
)

// Diagnostic is one rendered-ready finding: a rule violation bound to
// a source span with the final message text.
type Diagnostic struct {
	Severity Severity
	Rule     usorules.Rule
	Message  string
	Span     source.Span
}

// Reporter is the minimal contract rule handlers report through.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter is an adapter putting diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}
