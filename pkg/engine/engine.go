// Package engine drives operation evaluation across a batch of files,
// owning the shared state every expression and operation reads: the
// run-wide global index, the per-directory local index, the variable
// table, and the current-file cursor.
package engine

import (
	"github.com/arthur-debert/retree/pkg/logging"
	"github.com/arthur-debert/retree/pkg/types"
	"github.com/rs/zerolog"
)

// Engine owns the mutable evaluation state of one run plus the default
// operation lists applied to every directory and file it processes.
// It implements types.Env. An Engine is single-use: state spans one run
// and is never shared between goroutines.
type Engine struct {
	globalIndex int
	localIndex  int
	variables   map[string]string
	current     *types.File

	dirOps  []types.DirOperation
	fileOps []types.FileOperation

	logger zerolog.Logger
}

// New creates an engine with the given default operation lists. The
// defaults run before each directory's and file's own operations.
func New(dirOps []types.DirOperation, fileOps []types.FileOperation) *Engine {
	return &Engine{
		variables: make(map[string]string),
		dirOps:    dirOps,
		fileOps:   fileOps,
		logger:    logging.GetLogger("engine"),
	}
}

// ProcessDir runs a directory through the engine: default directory
// operations, the directory's own operations, then every remaining file
// in resulting order. It returns the processed file list.
func (e *Engine) ProcessDir(dir *types.Dir) ([]types.File, error) {
	e.localIndex = 0

	files := dir.Files
	dir.Files = nil

	e.logger.Debug().
		Str("dir", dir.Path).
		Int("files", len(files)).
		Int("dirOps", len(e.dirOps)+len(dir.DirOps)).
		Msg("Processing directory")

	for _, op := range e.dirOps {
		if err := op.Apply(e, &files); err != nil {
			return nil, err
		}
	}
	for _, op := range dir.DirOps {
		if err := op.Apply(e, &files); err != nil {
			return nil, err
		}
	}

	for i := range files {
		if err := e.runFile(&files[i]); err != nil {
			return nil, err
		}
	}

	e.logger.Debug().
		Str("dir", dir.Path).
		Int("remaining", len(files)).
		Msg("Directory processed")

	return files, nil
}

// ProcessFile runs a single file outside any directory batch, resetting
// the local index first.
func (e *Engine) ProcessFile(file *types.File) error {
	e.localIndex = 0
	return e.runFile(file)
}

// runFile applies the default file operations then the file's own, in
// order, and advances both counters exactly once.
func (e *Engine) runFile(file *types.File) error {
	e.current = file
	defer func() { e.current = nil }()

	for _, op := range e.fileOps {
		if _, err := op.Apply(e); err != nil {
			return err
		}
	}
	for _, op := range file.Ops {
		if _, err := op.Apply(e); err != nil {
			return err
		}
	}

	e.logger.Trace().
		Str("source", file.Source).
		Str("destination", file.Destination).
		Int("globalIndex", e.globalIndex).
		Int("localIndex", e.localIndex).
		Msg("File processed")

	e.globalIndex++
	e.localIndex++

	return nil
}

// GlobalIndex implements types.Env
func (e *Engine) GlobalIndex() int {
	return e.globalIndex
}

// LocalIndex implements types.Env
func (e *Engine) LocalIndex() int {
	return e.localIndex
}

// SetLocalIndex implements types.Env
func (e *Engine) SetLocalIndex(n int) {
	e.localIndex = n
}

// LookupVariable implements types.Env
func (e *Engine) LookupVariable(name string) (string, bool) {
	value, ok := e.variables[name]
	return value, ok
}

// SetVariable implements types.Env
func (e *Engine) SetVariable(name, value string) {
	e.variables[name] = value
}

// CurrentFile implements types.Env. It is only valid while a file
// operation or expression is being evaluated.
func (e *Engine) CurrentFile() *types.File {
	return e.current
}
