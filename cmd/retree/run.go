package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/retree/pkg/config"
	"github.com/arthur-debert/retree/pkg/filesystem"
	"github.com/arthur-debert/retree/pkg/logging"
	"github.com/arthur-debert/retree/pkg/output"
	"github.com/arthur-debert/retree/pkg/rename"
	"github.com/arthur-debert/retree/pkg/scriptfile"
	"github.com/arthur-debert/retree/pkg/types"
)

var dryRun bool

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Preview renames without executing them")
}

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a rename script",
	Long: `Run loads a TOML or YAML rename script, computes every destination
path, and commits the renames. With --dry-run (or run.dry_run in the
configuration) nothing is renamed and the computed pairs are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return executeScript(args[0], dryRun || cfg.Run.DryRun, cfg)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <script>",
	Short: "Preview a rename script without touching the filesystem",
	Long: `Plan loads a rename script and prints the (source, destination)
pair for every file it would rename. The filesystem is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return executeScript(args[0], true, cfg)
	},
}

func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Load(wd)
}

func executeScript(path string, dry bool, cfg *config.Config) error {
	logger := logging.GetLogger("cmd.run")
	logger.Info().Str("script", path).Bool("dryRun", dry).Msg("Starting run")

	fsys := filesystem.NewOS()
	script, err := scriptfile.LoadWithPolicy(fsys, path, walkPolicy(cfg))
	if err != nil {
		return err
	}

	var results []types.RenameResult
	if dry {
		results, err = script.DryRun()
	} else {
		results, err = script.Run()
	}
	if err != nil {
		return err
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(os.Stdout, format)
	return renderer.RenderResults(results, dry)
}

func walkPolicy(cfg *config.Config) rename.WalkPolicy {
	return rename.WalkPolicy{
		MaxDepth:     cfg.Walk.MaxDepth,
		FailOnDepth:  cfg.Walk.FailOnDepth,
		Canonicalize: cfg.Walk.Canonicalize,
	}
}

// resolveFormat prefers the --format flag over the configured default
func resolveFormat(cfg *config.Config) (output.Format, error) {
	name := formatName
	if name == "" {
		name = cfg.Output.Format
	}
	return output.ParseFormat(name)
}
