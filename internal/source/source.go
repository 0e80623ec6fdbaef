// Package source holds source file bookkeeping: file registration,
// byte-offset spans and line/column resolution for reported locations.
package source

import (
	"sort"
)

// FileID uniquely identifies a file within a FileSet.
type FileID uint32

// File is a registered source file together with its content and
// a precomputed line index used for offset -> line/column resolution.
type File struct {
	ID      FileID
	Path    string
	Content []byte

	// lineStarts[i] is the byte offset of the first character of line i+1.
	lineStarts []uint32
}

// LineCol is a human-readable position, both components are 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// LineCol resolves a byte offset into a 1-based line/column pair.
// Offsets beyond the file map to the position right past the last byte.
func (f *File) LineCol(offset uint32) LineCol {
	if offset > uint32(len(f.Content)) {
		offset = uint32(len(f.Content))
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})

	// line is now 1-based: lineStarts[line-1] <= offset.
	return LineCol{
		Line: uint32(line),
		Col:  offset - f.lineStarts[line-1] + 1,
	}
}

// Span of the whole file content.
func (f *File) Span() Span {
	return Span{File: f.ID, Start: 0, End: uint32(len(f.Content))}
}

func computeLineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}

	return starts
}
