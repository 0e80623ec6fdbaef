package scopes

import (
	"github.com/sirkon/rbtree"

	"github.com/sirkon/sysfirst/internal/directive"
)

// scopeSpan stores a half-open [start,end) span of a scope and, if
// needed, a nested RB-tree for child spans fully contained in it.
type scopeSpan struct {
	start uint32
	end   uint32

	scope    *directive.Scope
	children *rbtree.Tree[*scopeSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
//   - return -1 if this span is strictly before other
//   - return  1 if this span is strictly after other
//   - return  0 if spans overlap in any way (including containment)
//
// NOTE: we rely on an *invariant of the input*: any two overlapping
// spans must be in a strict containment relationship (no partial
// overlaps). Nested lexical scopes satisfy it by construction. Under
// this invariant "equal" (0) means superspan/subspan, and the RB-tree
// gives us a handle (`InsertReturn`) to the overlapping node so the
// containment fix-up can be done here.
func (n *scopeSpan) Cmp(other *scopeSpan) int {
	if n.end <= other.start {
		return -1
	}
	if n.start >= other.end {
		return 1
	}

	return 0
}

func contains(a, b *scopeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t with the containment rules:
//   - no overlapping node in t: s becomes a sibling;
//   - an overlapping node r exists and s contains r: mutate r in-place to
//     become s (the pointer already present in the tree now represents s)
//     and re-attach the old r as a child of the new s, avoiding any
//     "Replace" operation;
//   - r contains s: recursively attach s into r.children.
//
// Under the no-partial-overlap invariant these are the only cases.
func attachInto(t *rbtree.Tree[*scopeSpan], s *scopeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	if contains(s, r) {
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*scopeSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*scopeSpan]()
		}

		n := *s
		*s = *r

		attachInto(s.children, &n)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *scopeSpan, offset uint32) *directive.Scope {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.scope
	}

	probe := &scopeSpan{start: offset, end: offset + 1}
	child := n.children.Search(probe)
	if child == nil {
		return n.scope
	}
	if v := descendSearch(child, offset); v != nil {
		return v
	}

	return n.scope
}
