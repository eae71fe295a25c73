package rename

import "github.com/arthur-debert/retree/pkg/types"

// Script chains several rename trees into one invocation. Trees run
// in the order added, each with its own engine state.
type Script struct {
	trees []*Tree
}

// NewScript creates a Script from the given trees
func NewScript(trees ...*Tree) *Script {
	return &Script{trees: trees}
}

// Push appends a tree to the script
func (s *Script) Push(tree *Tree) {
	s.trees = append(s.trees, tree)
}

// Run commits every tree in order and aggregates the results
func (s *Script) Run() ([]types.RenameResult, error) {
	return s.each((*Tree).Run)
}

// DryRun computes every tree's results without touching the
// filesystem
func (s *Script) DryRun() ([]types.RenameResult, error) {
	return s.each((*Tree).DryRun)
}

func (s *Script) each(action func(*Tree) ([]types.RenameResult, error)) ([]types.RenameResult, error) {
	var output []types.RenameResult
	for _, tree := range s.trees {
		results, err := action(tree)
		if err != nil {
			return nil, err
		}
		output = append(output, results...)
	}
	return output, nil
}
