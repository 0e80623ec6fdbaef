package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/driver"
)

// Finding is the JSON shape of one diagnostic.
type Finding struct {
	File      string `json:"file"`
	Line      uint32 `json:"line"`
	Col       uint32 `json:"col"`
	Code      string `json:"code"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Namespace string `json:"namespace,omitempty"`
}

// JSON writes the findings as an indented JSON array, an empty result
// renders as [].
func JSON(w io.Writer, res *driver.Result) error {
	findings := make([]Finding, 0, res.Bag.Len())
	for _, d := range res.Bag.Items() {
		f := res.Files.Get(d.Span.File)
		if f == nil {
			continue
		}
		lc := f.LineCol(d.Span.Start)

		finding := Finding{
			File:     f.Path,
			Line:     lc.Line,
			Col:      lc.Col,
			Code:     d.Rule.Code(),
			Severity: d.Severity.String(),
			Message:  d.Message,
		}
		if sc := res.ScopeAt(d.Span); sc != nil && sc.Kind == directive.ScopeNamespace {
			finding.Namespace = sc.Name
		}

		findings = append(findings, finding)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}

	return nil
}
