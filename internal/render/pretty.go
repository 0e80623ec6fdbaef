// Package render turns a check result into console output.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sirkon/sysfirst/internal/diag"
	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/driver"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	locColor  = color.New(color.Bold)
)

// Pretty writes human-oriented one-line-per-finding output with a
// trailing summary. Colors are dropped when colored is false.
func Pretty(w io.Writer, res *driver.Result, colored bool) error {
	if !colored {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()
	}

	for _, d := range res.Bag.Items() {
		f := res.Files.Get(d.Span.File)
		if f == nil {
			continue
		}
		lc := f.LineCol(d.Span.Start)

		sev := d.Severity.String()
		switch d.Severity {
		case diag.SeverityError:
			sev = errColor.Sprint(sev)
		case diag.SeverityWarning:
			sev = warnColor.Sprint(sev)
		default:
			sev = infoColor.Sprint(sev)
		}

		where := ""
		if sc := res.ScopeAt(d.Span); sc != nil && sc.Kind == directive.ScopeNamespace {
			where = fmt.Sprintf(" (in namespace %s)", sc.Name)
		}

		loc := locColor.Sprintf("%s:%d:%d", f.Path, lc.Line, lc.Col)
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s%s\n", loc, sev, d.Rule.Code(), d.Message, where); err != nil {
			return fmt.Errorf("write finding: %w", err)
		}
	}

	if n := res.Bag.Len(); n > 0 {
		if _, err := fmt.Fprintf(w, "\n%d problem(s) in %d file(s)\n", n, res.Files.Len()); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}
