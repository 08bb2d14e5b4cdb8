package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zawatton21/org-excalidraw/internal/config"
	"github.com/zawatton21/org-excalidraw/internal/create"
	"github.com/zawatton21/org-excalidraw/internal/render"
)

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "Create a new drawing and open it in the editor",
	Long: `Allocate a new drawing file in the configured drawing directory with the
base excalidraw template, then open it with the system's associated
application. The file exists on disk before the editor starts.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger()
	invoker := render.NewInvoker(cfg.Converter.Command, cfg.Directories.Images,
		logger.WithComponent("render"))
	creator := create.New(cfg.Directories.Drawings, cfg.Naming.UseUUID,
		cfg.Naming.Prefix, invoker, logger.WithComponent("create"))

	path, err := creator.Create()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
