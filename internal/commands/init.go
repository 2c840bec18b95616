package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/salescope-dev/salescope/internal/config"
)

func newInitCommand() *cobra.Command {
	var dataPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default salescope.yaml",
		Args:  cobra.MaximumNArgs(1),
		// Overrides the root hook: init must work without a valid config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path, err := runInit(absDir, dataPath, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized salescope config at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "dataset", "", "sales CSV path to record in the config")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func runInit(dir, dataPath string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking config: %w", err)
	}

	cfg := config.Default()
	if dataPath != "" {
		cfg.Dataset.Path = dataPath
	}
	if err := config.Save(path, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	// Charts land here unless configured otherwise.
	if err := os.MkdirAll(filepath.Join(dir, cfg.Charts.Dir), 0o755); err != nil {
		return "", fmt.Errorf("creating chart dir: %w", err)
	}

	return path, nil
}
