// Package create allocates new drawing files and opens them in the
// associated editor. It shares the filename scheme with the watch pipeline
// but is not part of it.
package create

import (
	"os"
	"path/filepath"
	"time"

	"github.com/zawatton21/org-excalidraw/internal/errors"
	"github.com/zawatton21/org-excalidraw/internal/logging"
	"github.com/zawatton21/org-excalidraw/internal/paths"
)

// drawingTemplate is the fixed initial content of a new drawing file.
const drawingTemplate = `{
  "type": "excalidraw",
  "version": 2,
  "source": "org-excalidraw",
  "elements": [],
  "appState": {
    "gridSize": null,
    "viewBackgroundColor": "#ffffff"
  },
  "files": {}
}
`

// Opener launches the drawing editor on a path, detached.
type Opener interface {
	Open(path string) error
}

// Creator allocates drawing files in a configured directory.
type Creator struct {
	dir     string
	useUUID bool
	prefix  string
	opener  Opener
	logger  *logging.Logger
	now     func() time.Time
}

// New creates a Creator writing into dir.
func New(dir string, useUUID bool, prefix string, opener Opener, logger *logging.Logger) *Creator {
	return &Creator{
		dir:     dir,
		useUUID: useUUID,
		prefix:  prefix,
		opener:  opener,
		logger:  logger,
		now:     time.Now,
	}
}

// Create allocates a new drawing file with the base template and opens it in
// the editor. The file exists with its full initial content before the
// editor process starts. Returns the new drawing's path.
func (c *Creator) Create() (string, error) {
	name := paths.Filename(c.useUUID, c.prefix, c.now())
	path := filepath.Join(c.dir, name)

	if err := paths.Validate(path); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(drawingTemplate), 0o644); err != nil {
		return "", errors.NewIOError(errors.CodeCreateFailed,
			"creating drawing file", err).WithPath(path)
	}
	c.logger.Info("drawing created", "path", path)

	if err := c.opener.Open(path); err != nil {
		return path, err
	}
	return path, nil
}

// Template returns the initial drawing content.
func Template() string {
	return drawingTemplate
}
