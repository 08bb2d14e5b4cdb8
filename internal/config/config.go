// Package config loads pipeline configuration through Viper from
// .org-excalidraw.yml, ORG_EXCALIDRAW_* environment variables, and
// command-line flags, and validates the three configured directories before
// the watch subscription is armed.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Directories DirectoriesConfig `yaml:"directories" mapstructure:"directories"`
	Markers     MarkersConfig     `yaml:"markers" mapstructure:"markers"`
	Converter   ConverterConfig   `yaml:"converter" mapstructure:"converter"`
	Naming      NamingConfig      `yaml:"naming" mapstructure:"naming"`
	Watch       WatchConfig       `yaml:"watch" mapstructure:"watch"`
}

// DirectoriesConfig names the three directories the pipeline links together.
type DirectoriesConfig struct {
	Drawings  string `yaml:"drawings" mapstructure:"drawings"`
	Images    string `yaml:"images" mapstructure:"images"`
	Documents string `yaml:"documents" mapstructure:"documents"`
}

// MarkersConfig holds the literal block delimiters. With Strict set, a begin
// marker without an end marker is treated as an error instead of extending
// the block to end-of-text.
type MarkersConfig struct {
	Begin  string `yaml:"begin" mapstructure:"begin"`
	End    string `yaml:"end" mapstructure:"end"`
	Strict bool   `yaml:"strict" mapstructure:"strict"`
}

// ConverterConfig names the external drawing-to-SVG command.
type ConverterConfig struct {
	Command string `yaml:"command" mapstructure:"command"`
}

// NamingConfig controls new drawing filenames: a UUID, or prefix+timestamp.
type NamingConfig struct {
	UseUUID bool   `yaml:"use_uuid" mapstructure:"use_uuid"`
	Prefix  string `yaml:"prefix" mapstructure:"prefix"`
}

// WatchConfig tunes the watch subscription.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// Debounce returns the debounce window as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// Default returns the configuration written by `org-excalidraw init`.
func Default() *Config {
	return &Config{
		Directories: DirectoriesConfig{
			Drawings:  "./drawings",
			Images:    "./images",
			Documents: "./org",
		},
		Markers: MarkersConfig{
			Begin: "#+begin_src excalidraw",
			End:   "#+end_src",
		},
		Converter: ConverterConfig{
			Command: "excalidraw-cli",
		},
		Naming: NamingConfig{
			UseUUID: true,
			Prefix:  "drawing-",
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
	}
}

// Load unmarshals the Viper state into a Config and fills in defaults for
// anything the config file and environment left unset.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	def := Default()

	if cfg.Directories.Drawings == "" {
		cfg.Directories.Drawings = def.Directories.Drawings
	}
	if cfg.Directories.Images == "" {
		cfg.Directories.Images = def.Directories.Images
	}
	if cfg.Directories.Documents == "" {
		cfg.Directories.Documents = def.Directories.Documents
	}
	if cfg.Markers.Begin == "" {
		cfg.Markers.Begin = def.Markers.Begin
	}
	if cfg.Markers.End == "" {
		cfg.Markers.End = def.Markers.End
	}
	if cfg.Converter.Command == "" {
		cfg.Converter.Command = def.Converter.Command
	}
	if cfg.Naming.Prefix == "" {
		cfg.Naming.Prefix = def.Naming.Prefix
	}
	if !viper.IsSet("naming.use_uuid") {
		cfg.Naming.UseUUID = def.Naming.UseUUID
	}
	if cfg.Watch.DebounceMs <= 0 {
		cfg.Watch.DebounceMs = def.Watch.DebounceMs
	}

	return &cfg, nil
}
