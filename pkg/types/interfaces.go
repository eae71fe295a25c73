package types

import "io/fs"

// FS abstracts the filesystem touched by tree building and renaming
type FS interface {
	// Stat returns file info for validation
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory in name order
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads a whole file (script loading)
	ReadFile(name string) ([]byte, error)

	// Rename moves a file from oldpath to newpath
	Rename(oldpath, newpath string) error

	// Canonical returns the canonical absolute form of a path
	Canonical(name string) (string, error)
}

// Env is the mutable engine state threaded through every evaluation
// call. It is owned by one engine for the lifetime of one run; nothing
// else mutates it.
type Env interface {
	// GlobalIndex is the monotonic counter spanning the entire run
	GlobalIndex() int

	// LocalIndex is the per-directory counter
	LocalIndex() int

	// SetLocalIndex overwrites the per-directory counter
	SetLocalIndex(n int)

	// LookupVariable reads a variable from the run's variable table
	LookupVariable(name string) (string, bool)

	// SetVariable writes a variable into the run's variable table
	SetVariable(name, value string)

	// CurrentFile is the file being processed; valid only during
	// file-operation evaluation
	CurrentFile() *File
}

// FileOperation mutates the current file's destination path. Apply
// reports whether anything changed.
type FileOperation interface {
	Apply(env Env) (changed bool, err error)
}

// DirOperation mutates the ordered file batch of one directory before
// any file operation runs.
type DirOperation interface {
	Apply(env Env, files *[]File) error
}
