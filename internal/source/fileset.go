package source

// FileSet owns every file registered for one tool invocation.
//
// Registration is not safe for concurrent use: add every file up front,
// then hand files out to parallel workers. Lookups are read-only.
type FileSet struct {
	files  []*File
	byPath map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{
		byPath: map[string]FileID{},
	}
}

// AddFile registers file content under the given path and returns the
// registered file. Registering the same path twice returns the original
// registration, the new content is ignored.
func (fs *FileSet) AddFile(path string, content []byte) *File {
	if id, ok := fs.byPath[path]; ok {
		return fs.files[id]
	}

	f := &File{
		ID:         FileID(len(fs.files)),
		Path:       path,
		Content:    content,
		lineStarts: computeLineStarts(content),
	}
	fs.files = append(fs.files, f)
	fs.byPath[path] = f.ID

	return f
}

// Get returns the file registered under id or nil for an unknown id.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}

	return fs.files[id]
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}
