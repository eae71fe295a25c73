package walker

import (
	"math"
	"path/filepath"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/logging"
	"github.com/arthur-debert/retree/pkg/types"
)

// DirInclusion controls whether visited directories appear in the
// walk result and where
type DirInclusion int

const (
	// IncludeFirst lists a directory before its contents
	IncludeFirst DirInclusion = iota
	// IncludeLast lists a directory after its contents
	IncludeLast
	// SkipDirs omits directories from the result
	SkipDirs
)

// String returns the inclusion policy name
func (d DirInclusion) String() string {
	switch d {
	case IncludeFirst:
		return "first"
	case IncludeLast:
		return "last"
	case SkipDirs:
		return "skip"
	default:
		return "unknown"
	}
}

// Walker walks a directory tree over a types.FS
type Walker struct {
	fs           types.FS
	root         string
	inclusions   DirInclusion
	maxDepth     int
	failOnDepth  bool
	canonicalize bool
}

// Option configures a Walker
type Option func(*Walker)

// WithDirInclusions sets the directory inclusion policy
func WithDirInclusions(inclusions DirInclusion) Option {
	return func(w *Walker) {
		w.inclusions = inclusions
	}
}

// WithMaxDepth limits how deep the walk descends. The root is at
// depth zero.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

// WithoutFailOnDepth makes hitting the depth limit a cutoff instead
// of an error. The unvisited directory is recorded per the inclusion
// policy.
func WithoutFailOnDepth() Option {
	return func(w *Walker) {
		w.failOnDepth = false
	}
}

// WithCanonicalize resolves each file path through fs.Canonical
// before recording it
func WithCanonicalize() Option {
	return func(w *Walker) {
		w.canonicalize = true
	}
}

// New creates a Walker rooted at root. The default policy lists
// directories before their contents, has no depth limit, and records
// file paths as found.
func New(fs types.FS, root string, opts ...Option) *Walker {
	w := &Walker{
		fs:          fs,
		root:        root,
		inclusions:  IncludeFirst,
		maxDepth:    math.MaxInt,
		failOnDepth: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk runs the traversal and returns the ordered paths
func (w *Walker) Walk() ([]string, error) {
	logger := logging.GetLogger("walker")
	logger.Debug().
		Str("root", w.root).
		Stringer("inclusions", w.inclusions).
		Msg("starting walk")

	paths, err := w.visit(w.root, 0)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(paths)).Msg("walk complete")
	return paths, nil
}

func (w *Walker) visit(dir string, depth int) ([]string, error) {
	if depth >= w.maxDepth {
		if w.failOnDepth {
			return nil, errors.New(errors.ErrMaxDepth, "maximum walk depth reached").
				WithDetail("path", dir).
				WithDetail("depth", depth)
		}
		if w.inclusions == SkipDirs {
			return nil, nil
		}
		return []string{dir}, nil
	}

	var results []string
	if w.inclusions == IncludeFirst {
		results = append(results, dir)
	}

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReadDir, "failed to read directory").
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := w.visit(path, depth+1)
			if err != nil {
				return nil, err
			}
			results = append(results, sub...)
			continue
		}

		if w.canonicalize {
			path, err = w.fs.Canonical(path)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCanonicalize, "failed to canonicalize path").
					WithDetail("path", path)
			}
		}
		results = append(results, path)
	}

	if w.inclusions == IncludeLast {
		results = append(results, dir)
	}

	return results, nil
}
