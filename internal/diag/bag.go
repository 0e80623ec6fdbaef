package diag

import (
	"fmt"
	"sort"
)

// Bag collects diagnostics of one run.
//
// A Bag is not safe for concurrent use, parallel producers fill their
// own bags and Merge them under their own lock.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the collected diagnostics. Do not
// modify the returned slice, it aliases the internal storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// HasErrors reports whether at least one diagnostic reaches error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SeverityError {
			return true
		}
	}

	return false
}

// HasWarnings reports whether at least one diagnostic reaches warning severity.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SeverityWarning {
			return true
		}
	}

	return false
}

// Merge appends diagnostics from another bag.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (desc) and rule
// code for a stable, deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.File != dj.Span.File {
			return di.Span.File < dj.Span.File
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}

		return di.Rule.Code() < dj.Rule.Code()
	})
}

// Dedup drops repeated diagnostics with the same rule and span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Rule.Code(), d.Span)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
