package store

import "time"

// File is one indexed Starlark source file.
type File struct {
	ID          int64
	Path        string
	Hash        string
	LineCount   int
	LastIndexed time.Time
}

// Function is one function definition extracted from a file's outline.
type Function struct {
	ID        int64
	FileID    int64
	Name      string
	Container string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// LocatedFunction is a Function joined with the path of its file, the shape
// lookup queries return.
type LocatedFunction struct {
	Function
	Path string
}
