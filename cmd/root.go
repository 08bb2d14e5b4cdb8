// Package cmd provides the org-excalidraw command-line interface.
//
// Configuration is loaded through Viper with the usual precedence:
//  1. Command-line flags (--config, --log-level)
//  2. ORG_EXCALIDRAW_* environment variables
//     (ORG_EXCALIDRAW_DIRECTORIES_DRAWINGS, ORG_EXCALIDRAW_MARKERS_STRICT, ...)
//  3. A .org-excalidraw.yml file in the current directory
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zawatton21/org-excalidraw/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "org-excalidraw",
	Short: "Keep org documents in sync with an excalidraw drawing directory",
	Long: `org-excalidraw watches a directory of excalidraw drawings. Whenever a
drawing changes it regenerates the drawing's SVG and rewrites the source
block of the drawing's companion org document with the drawing's raw JSON.

Quick start:
  org-excalidraw init             Write a starter config and directories
  org-excalidraw create           Create a new drawing and open the editor
  org-excalidraw watch            Watch the drawing directory

Command aliases: create (c), watch (w).`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .org-excalidraw.yml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".org-excalidraw")
	}

	viper.SetEnvPrefix("ORG_EXCALIDRAW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the global flags.
func newLogger() *logging.Logger {
	return logging.New(logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
}
