package rename

import (
	"path/filepath"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/types"
	"github.com/arthur-debert/retree/pkg/walker"
)

// WalkPolicy controls how recursive directories are discovered
type WalkPolicy struct {
	// MaxDepth limits descent below each directory root; zero means
	// unlimited
	MaxDepth int
	// FailOnDepth makes hitting MaxDepth an error instead of a cutoff
	FailOnDepth bool
	// Canonicalize resolves discovered paths through fs.Canonical
	Canonicalize bool
}

// DefaultWalkPolicy returns the policy Build uses unless overridden:
// unlimited depth, hard failure on a depth limit, canonical paths.
func DefaultWalkPolicy() WalkPolicy {
	return WalkPolicy{FailOnDepth: true, Canonicalize: true}
}

// Builder collects the inputs for a rename tree
type Builder struct {
	fs      types.FS
	walk    WalkPolicy
	dirs    []types.Dir
	files   []types.File
	dirOps  []types.DirOperation
	fileOps []types.FileOperation
}

// NewBuilder creates a Builder that discovers and renames files
// through fs
func NewBuilder(fs types.FS) *Builder {
	return &Builder{fs: fs, walk: DefaultWalkPolicy()}
}

// WithWalkPolicy sets the discovery policy for every directory added
// to the builder
func (b *Builder) WithWalkPolicy(policy WalkPolicy) *Builder {
	b.walk = policy
	return b
}

// WithDirectory adds a directory to process
func (b *Builder) WithDirectory(dir types.Dir) *Builder {
	b.dirs = append(b.dirs, dir)
	return b
}

// WithDirectories adds several directories to process
func (b *Builder) WithDirectories(dirs ...types.Dir) *Builder {
	b.dirs = append(b.dirs, dirs...)
	return b
}

// WithFile adds a standalone file, processed after all directories
func (b *Builder) WithFile(file types.File) *Builder {
	b.files = append(b.files, file)
	return b
}

// WithFiles adds several standalone files
func (b *Builder) WithFiles(files ...types.File) *Builder {
	b.files = append(b.files, files...)
	return b
}

// WithDirOperation adds a default directory operation, run for every
// directory before its own operations
func (b *Builder) WithDirOperation(op types.DirOperation) *Builder {
	b.dirOps = append(b.dirOps, op)
	return b
}

// WithDirOperations adds several default directory operations
func (b *Builder) WithDirOperations(ops ...types.DirOperation) *Builder {
	b.dirOps = append(b.dirOps, ops...)
	return b
}

// WithFileOperation adds a default file operation, run for every file
// before its own operations
func (b *Builder) WithFileOperation(op types.FileOperation) *Builder {
	b.fileOps = append(b.fileOps, op)
	return b
}

// WithFileOperations adds several default file operations
func (b *Builder) WithFileOperations(ops ...types.FileOperation) *Builder {
	b.fileOps = append(b.fileOps, ops...)
	return b
}

// Build validates the inputs, discovers the files behind each
// directory, and produces a runnable Tree
func (b *Builder) Build() (*Tree, error) {
	tree := &Tree{
		fs:      b.fs,
		dirOps:  b.dirOps,
		fileOps: b.fileOps,
	}

	for _, dir := range b.dirs {
		built, err := b.buildDir(dir)
		if err != nil {
			return nil, err
		}
		tree.dirs = append(tree.dirs, built)
	}

	for _, file := range b.files {
		if err := b.validateFile(file.Source); err != nil {
			return nil, err
		}
		tree.files = append(tree.files, file)
	}

	return tree, nil
}

// buildDir discovers dir's files, binding the directory's file
// operations to each
func (b *Builder) buildDir(dir types.Dir) (types.Dir, error) {
	info, err := b.fs.Stat(dir.Path)
	if err != nil || !info.IsDir() {
		return types.Dir{}, errors.New(errors.ErrNotDirectory, "path is not a directory").
			WithDetail("path", dir.Path)
	}

	var sources []string
	if dir.Recursive {
		sources, err = walker.New(b.fs, dir.Path, b.walkerOptions()...).Walk()
		if err != nil {
			return types.Dir{}, err
		}
	} else {
		entries, err := b.fs.ReadDir(dir.Path)
		if err != nil {
			return types.Dir{}, errors.Wrap(err, errors.ErrReadDir, "failed to read directory").
				WithDetail("path", dir.Path)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir.Path, entry.Name())
			if b.walk.Canonicalize {
				path, err = b.fs.Canonical(path)
				if err != nil {
					return types.Dir{}, errors.Wrap(err, errors.ErrCanonicalize, "failed to canonicalize path").
						WithDetail("path", entry.Name())
				}
			}
			sources = append(sources, path)
		}
	}

	dir.Files = make([]types.File, 0, len(sources))
	for _, src := range sources {
		dir.Files = append(dir.Files, types.NewFileWithOps(src, dir.FileOps))
	}

	return dir, nil
}

func (b *Builder) walkerOptions() []walker.Option {
	opts := []walker.Option{walker.WithDirInclusions(walker.SkipDirs)}
	if b.walk.Canonicalize {
		opts = append(opts, walker.WithCanonicalize())
	}
	if b.walk.MaxDepth > 0 {
		opts = append(opts, walker.WithMaxDepth(b.walk.MaxDepth))
	}
	if !b.walk.FailOnDepth {
		opts = append(opts, walker.WithoutFailOnDepth())
	}
	return opts
}

func (b *Builder) validateFile(path string) error {
	info, err := b.fs.Stat(path)
	if err != nil || info.IsDir() {
		return errors.New(errors.ErrNotFile, "path is not a file").
			WithDetail("path", path)
	}
	return nil
}
