package config

import (
	"fmt"
	"os"

	"github.com/zawatton21/org-excalidraw/internal/errors"
)

// Validate checks that every configured directory exists and is a directory.
// A failure here is fatal to initialization: the caller must not arm the
// watch subscription.
func (c *Config) Validate() error {
	dirs := []struct {
		role string
		path string
	}{
		{"drawings", c.Directories.Drawings},
		{"images", c.Directories.Images},
		{"documents", c.Directories.Documents},
	}

	for _, d := range dirs {
		info, err := os.Stat(d.path)
		if err != nil {
			return errors.NewConfigError(errors.CodeDirectoryMissing,
				fmt.Sprintf("%s directory does not exist", d.role)).WithPath(d.path)
		}
		if !info.IsDir() {
			return errors.NewConfigError(errors.CodeDirectoryMissing,
				fmt.Sprintf("%s path is not a directory", d.role)).WithPath(d.path)
		}
	}

	return nil
}
