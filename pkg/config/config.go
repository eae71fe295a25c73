package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/retree/pkg/errors"
)

// Config holds the resolved retree settings
type Config struct {
	Walk   WalkConfig   `koanf:"walk"`
	Output OutputConfig `koanf:"output"`
	Run    RunConfig    `koanf:"run"`
}

// WalkConfig controls directory discovery
type WalkConfig struct {
	// MaxDepth limits recursion; zero means unlimited
	MaxDepth     int  `koanf:"max_depth"`
	FailOnDepth  bool `koanf:"fail_on_depth"`
	Canonicalize bool `koanf:"canonicalize"`
}

// OutputConfig controls result presentation
type OutputConfig struct {
	Format string `koanf:"format"`
}

// RunConfig controls commit behavior
type RunConfig struct {
	DryRun bool `koanf:"dry_run"`
}

// Load resolves the layered configuration for workingDir
func Load(workingDir string) (*Config, error) {
	k, err := loadKoanf(workingDir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode configuration")
	}

	return &cfg, nil
}

func loadKoanf(workingDir string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if userPath, err := xdg.SearchConfigFile(filepath.Join("retree", "retree.toml")); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load user config").
				WithDetail("path", userPath)
		}
	}

	for _, filename := range []string{".retree.toml", "retree.toml"} {
		path := filepath.Join(workingDir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load working-directory config").
					WithDetail("path", path)
			}
			break
		}
	}

	return k, nil
}
