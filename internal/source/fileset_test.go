package source

import (
	"testing"
)

func TestFileLineCol(t *testing.T) {
	fs := NewFileSet()
	f := fs.AddFile("test.cs", []byte("using A;\nusing B;\n\nclass C {}"))

	tests := []struct {
		offset uint32
		want   LineCol
	}{
		{offset: 0, want: LineCol{Line: 1, Col: 1}},
		{offset: 7, want: LineCol{Line: 1, Col: 8}},
		{offset: 9, want: LineCol{Line: 2, Col: 1}},
		{offset: 18, want: LineCol{Line: 3, Col: 1}},
		{offset: 19, want: LineCol{Line: 4, Col: 1}},
		{offset: 25, want: LineCol{Line: 4, Col: 7}},
		// Out of bounds clamps to right past the content.
		{offset: 1000, want: LineCol{Line: 4, Col: 11}},
	}

	for _, tt := range tests {
		if got := f.LineCol(tt.offset); got != tt.want {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.offset, got.Line, got.Col, tt.want.Line, tt.want.Col)
		}
	}
}

func TestFileSetRegistration(t *testing.T) {
	fs := NewFileSet()

	a := fs.AddFile("a.cs", []byte("x"))
	b := fs.AddFile("b.cs", []byte("y"))

	if a.ID == b.ID {
		t.Fatal("distinct files must get distinct ids")
	}
	if fs.Get(a.ID) != a || fs.Get(b.ID) != b {
		t.Fatal("lookup by id went wrong")
	}
	if fs.Get(FileID(100)) != nil {
		t.Fatal("an unknown id must resolve to nil")
	}

	// Repeated registration keeps the original.
	again := fs.AddFile("a.cs", []byte("changed"))
	if again != a {
		t.Fatal("repeated registration must return the original file")
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
}

func TestSpan(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 20}

	if s.Empty() {
		t.Fatal("the span is not empty")
	}
	if s.Len() != 10 {
		t.Fatalf("unexpected length %d", s.Len())
	}
	if !s.Contains(10) || !s.Contains(19) {
		t.Fatal("boundary containment went wrong")
	}
	if s.Contains(20) || s.Contains(9) {
		t.Fatal("the span is half-open")
	}
	if s.String() != "1:10-20" {
		t.Fatalf("unexpected rendering %q", s.String())
	}
}
