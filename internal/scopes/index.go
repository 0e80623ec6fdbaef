// Package scopes maintains a positional index of one file's lexical
// scopes, answering "what is the innermost scope at this offset".
package scopes

import (
	"github.com/sirkon/rbtree"

	"github.com/sirkon/sysfirst/internal/directive"
)

func NewIndex() *Index {
	return &Index{tree: rbtree.New[*scopeSpan]()}
}

// Index holds all scopes collected for a single file.
type Index struct {
	tree *rbtree.Tree[*scopeSpan]
}

// ByOffset exits the most specific (innermost) scope covering offset.
func (x *Index) ByOffset(offset uint32) *directive.Scope {
	probe := &scopeSpan{start: offset, end: offset + 1}
	res := x.tree.Search(probe)
	if res == nil {
		return nil
	}

	return descendSearch(res, offset)
}

// Add registers a scope with its span. The RB-tree orders only disjoint
// spans; any overlap is reported back via InsertReturn and resolved into
// a strict containment hierarchy. All ordering/balancing is handled by
// the underlying rbtree.
func (x *Index) Add(sc *directive.Scope) {
	span := &scopeSpan{start: sc.Span.Start, end: sc.Span.End, scope: sc}
	attachInto(x.tree, span)
}
