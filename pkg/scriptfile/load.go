package scriptfile

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/logging"
	"github.com/arthur-debert/retree/pkg/rename"
	"github.com/arthur-debert/retree/pkg/types"
)

// Load reads a script file and compiles it into a runnable script
// under the default walk policy. The format is chosen by extension:
// .toml, .yaml, or .yml.
func Load(fs types.FS, path string) (*rename.Script, error) {
	return LoadWithPolicy(fs, path, rename.DefaultWalkPolicy())
}

// LoadWithPolicy is Load with an explicit discovery policy for the
// script's recursive directories.
func LoadWithPolicy(fs types.FS, path string, policy rename.WalkPolicy) (*rename.Script, error) {
	logger := logging.GetLogger("scriptfile")

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrScriptParse, "failed to read script").
			WithDetail("path", path)
	}

	spec, err := parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	script, err := compile(fs, spec, policy)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("trees", len(spec.Trees)).
		Msg("loaded script")
	return script, nil
}

func parse(data []byte, ext string) (*scriptSpec, error) {
	var spec scriptSpec

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &spec); err != nil {
			return nil, errors.Wrap(err, errors.ErrScriptParse, "bad TOML script")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, errors.Wrap(err, errors.ErrScriptParse, "bad YAML script")
		}
	default:
		return nil, errors.New(errors.ErrScriptParse, "unsupported script format").
			WithDetail("extension", ext)
	}

	if len(spec.Trees) == 0 {
		return nil, errors.New(errors.ErrScriptInvalid, "script declares no trees")
	}

	return &spec, nil
}

// compile turns a decoded script into built trees over fs
func compile(fs types.FS, spec *scriptSpec, policy rename.WalkPolicy) (*rename.Script, error) {
	script := rename.NewScript()

	for i := range spec.Trees {
		tree, err := compileTree(fs, &spec.Trees[i], policy)
		if err != nil {
			return nil, err
		}
		script.Push(tree)
	}

	return script, nil
}

func compileTree(fs types.FS, spec *treeSpec, policy rename.WalkPolicy) (*rename.Tree, error) {
	builder := rename.NewBuilder(fs).WithWalkPolicy(policy)

	dirOps, err := compileDirOps(spec.DirOps)
	if err != nil {
		return nil, err
	}
	builder.WithDirOperations(dirOps...)

	fileOps, err := compileFileOps(spec.FileOps)
	if err != nil {
		return nil, err
	}
	builder.WithFileOperations(fileOps...)

	for i := range spec.Dirs {
		d := &spec.Dirs[i]

		ownDirOps, err := compileDirOps(d.DirOps)
		if err != nil {
			return nil, err
		}
		ownFileOps, err := compileFileOps(d.FileOps)
		if err != nil {
			return nil, err
		}
		builder.WithDirectory(types.NewDir(d.Path, d.Recursive, ownDirOps, ownFileOps))
	}

	for i := range spec.Files {
		f := &spec.Files[i]

		ops, err := compileFileOps(f.Ops)
		if err != nil {
			return nil, err
		}
		builder.WithFile(types.NewFileWithOps(f.Path, ops))
	}

	return builder.Build()
}
