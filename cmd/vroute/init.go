package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/shellroute/internal/config"
	"github.com/vango-dev/shellroute/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		dir    string
		asTOML bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a vroute config file",
		Long: `Create vroute.json (or vroute.toml with --toml) with default settings.

Examples:
  vroute init
  vroute init --toml --dir ./app`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.ConfigFileName
			if asTOML {
				name = config.TOMLConfigFileName
			}
			path := filepath.Join(dir, name)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Use --force to overwrite it")
			}

			cfg := config.New()
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the file in")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "Write TOML instead of JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
