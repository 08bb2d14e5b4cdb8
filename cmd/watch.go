package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zawatton21/org-excalidraw/internal/config"
	"github.com/zawatton21/org-excalidraw/internal/dispatch"
	"github.com/zawatton21/org-excalidraw/internal/paths"
	"github.com/zawatton21/org-excalidraw/internal/render"
	"github.com/zawatton21/org-excalidraw/internal/splice"
	"github.com/zawatton21/org-excalidraw/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Watch the drawing directory and sync org documents",
	Long: `Watch the configured drawing directory. When a drawing changes, request
an SVG re-render and rewrite the source block of its companion org document.

The watch runs until interrupted. Failures are isolated per change: a bad
drawing or document never stops the watch.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	// The subscription is never armed on a configuration error.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger()

	editor := splice.NewEditor(splice.Markers{
		Begin: cfg.Markers.Begin,
		End:   cfg.Markers.End,
	}, cfg.Markers.Strict)
	invoker := render.NewInvoker(cfg.Converter.Command, cfg.Directories.Images,
		logger.WithComponent("render"))
	dispatcher := dispatch.New(cfg.Directories.Documents, editor, invoker,
		logger.WithComponent("dispatch"))

	w, err := watcher.New(cfg.Watch.Debounce(), logger.WithComponent("watcher"))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Stop()

	w.AddFilter(watcher.ExtensionFilter(paths.DrawingExt))
	w.AddHandler(dispatcher.HandleEvents)

	if err := w.Watch(cfg.Directories.Drawings); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Directories.Drawings, err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	w.Start(ctx)

	logger.Info("watching drawing directory",
		"drawings", cfg.Directories.Drawings,
		"images", cfg.Directories.Images,
		"documents", cfg.Directories.Documents)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	return nil
}
