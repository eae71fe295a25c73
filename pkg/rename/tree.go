package rename

import (
	"slices"

	"github.com/arthur-debert/retree/pkg/engine"
	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/logging"
	"github.com/arthur-debert/retree/pkg/types"
)

// Tree is a built set of rename records ready to execute. Run and
// DryRun evaluate from the records as built, so either can be called
// repeatedly or after the other.
type Tree struct {
	fs      types.FS
	dirs    []types.Dir
	files   []types.File
	dirOps  []types.DirOperation
	fileOps []types.FileOperation
}

// Run computes every destination and commits the renames. Renames
// already performed are not undone when a later one fails.
func (t *Tree) Run() ([]types.RenameResult, error) {
	defer logging.LogOperationStart(logging.GetLogger("rename"), "run")()

	files, err := t.evaluate()
	if err != nil {
		return nil, err
	}
	return t.commit(files, false)
}

// DryRun computes every destination without touching the filesystem
func (t *Tree) DryRun() ([]types.RenameResult, error) {
	defer logging.LogOperationStart(logging.GetLogger("rename"), "dry_run")()

	files, err := t.evaluate()
	if err != nil {
		return nil, err
	}
	return t.commit(files, true)
}

// evaluate runs a fresh engine over copies of the built records
func (t *Tree) evaluate() ([]types.File, error) {
	eng := engine.New(t.dirOps, t.fileOps)

	var out []types.File
	for _, dir := range t.dirs {
		dir.Files = slices.Clone(dir.Files)
		files, err := eng.ProcessDir(&dir)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}

	for _, file := range t.files {
		if err := eng.ProcessFile(&file); err != nil {
			return nil, err
		}
		out = append(out, file)
	}

	return out, nil
}

// commit checks for duplicate sources and renames in order
func (t *Tree) commit(files []types.File, dry bool) ([]types.RenameResult, error) {
	logger := logging.GetLogger("rename")

	seen := make(map[string]struct{}, len(files))
	results := make([]types.RenameResult, 0, len(files))

	for _, file := range files {
		if _, dup := seen[file.Source]; dup {
			return nil, errors.New(errors.ErrDuplicateSource, "source path claimed twice").
				WithDetail("path", file.Source)
		}
		seen[file.Source] = struct{}{}

		if !dry {
			if err := t.fs.Rename(file.Source, file.Destination); err != nil {
				return nil, errors.Wrap(err, errors.ErrRename, "rename failed").
					WithDetail("source", file.Source).
					WithDetail("destination", file.Destination)
			}
			logger.Info().
				Str("source", file.Source).
				Str("destination", file.Destination).
				Msg("renamed")
		} else {
			logger.Debug().
				Str("source", file.Source).
				Str("destination", file.Destination).
				Msg("planned rename")
		}

		results = append(results, types.RenameResult{
			Source:      file.Source,
			Destination: file.Destination,
		})
	}

	return results, nil
}
