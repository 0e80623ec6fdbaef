package diag_test

import (
	"testing"

	"github.com/sirkon/sysfirst/internal/diag"
	"github.com/sirkon/sysfirst/internal/ordering"
	"github.com/sirkon/sysfirst/internal/source"
	"github.com/sirkon/sysfirst/internal/usorules"
)

func TestFromViolation(t *testing.T) {
	v := ordering.Violation{
		Offending:      "System.Text",
		ExpectedBefore: "MyApp",
		Span:           source.Span{File: 1, Start: 10, End: 30},
	}

	d := diag.FromViolation(diag.SeverityWarning, v)

	if d.Rule != usorules.USO010SystemFirst {
		t.Fatalf("unexpected rule %s", d.Rule)
	}
	if d.Span != v.Span {
		t.Fatalf("the diagnostic must keep the violation span, got %s", d.Span)
	}

	const want = "using directive for 'System.Text' must appear before directive for 'MyApp'"
	if d.Message != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", d.Message, want)
	}
}

func TestEmitViolations(t *testing.T) {
	bag := diag.NewBag()
	vs := []ordering.Violation{
		{Offending: "System", ExpectedBefore: "MyApp", Span: source.Span{File: 1, Start: 10, End: 20}},
		{Offending: "System.Linq", ExpectedBefore: "MyApp", Span: source.Span{File: 1, Start: 30, End: 50}},
	}

	diag.EmitViolations(diag.BagReporter{Bag: bag}, diag.SeverityError, vs)

	if bag.Len() != len(vs) {
		t.Fatalf("emission is 1:1, got %d diagnostics for %d violations", bag.Len(), len(vs))
	}
	for i, d := range bag.Items() {
		if d.Span != vs[i].Span {
			t.Fatalf("diagnostic %d lost its span", i)
		}
		if d.Severity != diag.SeverityError {
			t.Fatalf("diagnostic %d lost its severity", i)
		}
	}
}
