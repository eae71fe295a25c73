package operations

import (
	"slices"
	"strings"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/arthur-debert/retree/pkg/types"
)

type sortOp struct{ direction SortDirection }

type removeOp struct{ rule rules.Rule }

type includeOnlyOp struct{ rule rules.Rule }

type offsetLocalIndexOp struct{ offset int }

// Sort orders the batch by destination path
func Sort(direction SortDirection) types.DirOperation {
	return sortOp{direction: direction}
}

// Remove drops every file whose destination name matches the rule
func Remove(rule rules.Rule) types.DirOperation {
	return removeOp{rule: rule}
}

// IncludeOnly keeps only files whose destination name matches the rule
func IncludeOnly(rule rules.Rule) types.DirOperation {
	return includeOnlyOp{rule: rule}
}

// OffsetLocalIndex overwrites the engine's local index, shifting the
// per-file index reads that follow within the same directory
func OffsetLocalIndex(offset int) types.DirOperation {
	return offsetLocalIndexOp{offset: offset}
}

func (o sortOp) Apply(_ types.Env, files *[]types.File) error {
	slices.SortFunc(*files, func(a, b types.File) int {
		if o.direction == Descending {
			return strings.Compare(b.Destination, a.Destination)
		}
		return strings.Compare(a.Destination, b.Destination)
	})
	return nil
}

func (o removeOp) Apply(_ types.Env, files *[]types.File) error {
	return filterFiles(files, o.rule, true)
}

func (o includeOnlyOp) Apply(_ types.Env, files *[]types.File) error {
	return filterFiles(files, o.rule, false)
}

func (o offsetLocalIndexOp) Apply(env types.Env, _ *[]types.File) error {
	env.SetLocalIndex(o.offset)
	return nil
}

// filterFiles keeps files whose name-match result differs from drop.
// A destination with no name component aborts the batch.
func filterFiles(files *[]types.File, rule rules.Rule, dropMatches bool) error {
	kept := make([]types.File, 0, len(*files))
	for _, f := range *files {
		name, ok := fileNameOf(f.Destination)
		if !ok {
			return errors.Newf(errors.ErrNoFileName,
				"cannot identify file name in %q", f.Destination)
		}
		if rules.Resolve(rule, name) != dropMatches {
			kept = append(kept, f)
		}
	}
	*files = kept
	return nil
}
