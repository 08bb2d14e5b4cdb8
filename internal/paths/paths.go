// Package paths maps drawing filenames to their companion image and org
// document paths, and validates the drawing filename convention. All
// functions are pure string transforms; no filesystem access happens here.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zawatton21/org-excalidraw/internal/errors"
)

const (
	// DrawingExt is the canonical drawing file extension.
	DrawingExt = ".excalidraw"
	// ImageExt is appended to the full drawing filename for rendered output.
	ImageExt = ".svg"
	// DocumentExt is appended to the full drawing filename for the org companion.
	DocumentExt = ".org"
)

const timestampLayout = "20060102150405"

// Filename allocates a new drawing filename. With useUUID a v4 identifier
// guarantees uniqueness; otherwise the name is prefix plus a second-resolution
// timestamp with no further collision detection.
func Filename(useUUID bool, prefix string, now time.Time) string {
	if useUUID {
		return uuid.NewString() + DrawingExt
	}
	return fmt.Sprintf("%s%s%s", prefix, now.Format(timestampLayout), DrawingExt)
}

// Validate fails unless path ends with the drawing extension as its final
// extension, so "x.excalidraw.bak" is rejected.
func Validate(path string) error {
	if filepath.Ext(path) != DrawingExt {
		return errors.NewValidationError(errors.CodeInvalidExtension,
			fmt.Sprintf("not a %s file", DrawingExt)).WithPath(path)
	}
	return nil
}

// CompanionDocument maps a drawing path to its org document in docDir:
// /d/x/foo.excalidraw -> docDir/foo.excalidraw.org.
func CompanionDocument(drawingPath, docDir string) string {
	return filepath.Join(docDir, filepath.Base(drawingPath)+DocumentExt)
}

// CompanionImage maps a drawing path to its rendered image in imageDir:
// /d/x/foo.excalidraw -> imageDir/foo.excalidraw.svg.
func CompanionImage(drawingPath, imageDir string) string {
	return filepath.Join(imageDir, filepath.Base(drawingPath)+ImageExt)
}

// Stem returns the drawing filename without directory or extension.
func Stem(drawingPath string) string {
	return strings.TrimSuffix(filepath.Base(drawingPath), DrawingExt)
}
