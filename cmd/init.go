package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zawatton21/org-excalidraw/internal/config"
)

const configFileName = ".org-excalidraw.yml"

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration and create the directories",
	Long: `Write a starter .org-excalidraw.yml in the current directory and create
the default drawing, image, and document directories.

Examples:
  org-excalidraw init
  org-excalidraw init --force   # overwrite an existing config file`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configFileName); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
	}

	cfg := config.Default()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := os.WriteFile(configFileName, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}

	for _, dir := range []string{
		cfg.Directories.Drawings,
		cfg.Directories.Images,
		cfg.Directories.Documents,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
	return nil
}
