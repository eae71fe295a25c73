package types

// File is one file record in a rename tree. Source identifies the file
// and never changes after creation; Destination starts equal to Source
// and is the only path operations may read or write.
type File struct {
	// Source is the immutable original path of the file
	Source string

	// Destination is the mutable computed output path
	Destination string

	// Ops are the file operations bound to this file alone, run after
	// the engine's default file operations
	Ops []FileOperation
}

// NewFile creates a file record whose destination starts at its source
func NewFile(path string) File {
	return File{Source: path, Destination: path}
}

// NewFileWithOps creates a file record with file-specific operations.
// The ops slice is shared, not copied; operations are immutable.
func NewFileWithOps(path string, ops []FileOperation) File {
	return File{Source: path, Destination: path, Ops: ops}
}

// WithOps returns a copy of the file with the given operations attached
func (f File) WithOps(ops ...FileOperation) File {
	f.Ops = ops
	return f
}

// Dir is one directory in a rename tree, holding its discovered file
// records and the operations that apply to them.
type Dir struct {
	// Path is the directory root
	Path string

	// Recursive selects walking the whole subtree instead of a flat listing
	Recursive bool

	// DirOps reorder, filter, or reindex the file batch before any file
	// operation runs
	DirOps []DirOperation

	// FileOps are attached to every file discovered under this directory
	FileOps []FileOperation

	// Files is the concrete file list, populated during tree building
	Files []File
}

// NewDir creates a directory record
func NewDir(path string, recursive bool, dirOps []DirOperation, fileOps []FileOperation) Dir {
	return Dir{
		Path:      path,
		Recursive: recursive,
		DirOps:    dirOps,
		FileOps:   fileOps,
	}
}

// RenameResult is the immutable (source, destination) pair produced for
// each file at commit time.
type RenameResult struct {
	Source      string
	Destination string
}
