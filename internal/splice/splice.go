// Package splice rewrites the embedded drawing source block inside an org
// document. It deliberately does not parse org syntax: the block is located
// by a plain substring scan for a literal begin/end marker pair, and only the
// region between them is ever touched.
package splice

import (
	"strings"

	"github.com/zawatton21/org-excalidraw/internal/errors"
)

// Markers is the literal delimiter pair bracketing the embedded drawing
// source. The tokens are configuration constants, not negotiated per
// document.
type Markers struct {
	Begin string
	End   string
}

// DefaultMarkers returns the org source-block delimiters.
func DefaultMarkers() Markers {
	return Markers{
		Begin: "#+begin_src excalidraw",
		End:   "#+end_src",
	}
}

// Editor replaces the body of the first marker-delimited block in a
// document.
type Editor struct {
	markers Markers
	strict  bool
}

// NewEditor creates an editor. With strict enabled, a begin marker without a
// matching end marker is an error instead of extending the block to
// end-of-text.
func NewEditor(markers Markers, strict bool) *Editor {
	if markers.Begin == "" || markers.End == "" {
		markers = DefaultMarkers()
	}
	return &Editor{markers: markers, strict: strict}
}

// OverwriteBlock replaces the block body with content, verbatim. The region
// starts on the line after the first begin-marker occurrence and ends on the
// line before the end marker; everything before the begin-marker line and
// from the end-marker line onward is preserved byte for byte.
//
// With no begin marker the document is returned unchanged and found is
// false. With a begin marker but no end marker the region extends to
// end-of-text, so the remainder of the document is replaced; in strict mode
// this case returns a missing-end-marker error and leaves the document
// unchanged instead.
func (e *Editor) OverwriteBlock(doc, content string) (updated string, found bool, err error) {
	idx := strings.Index(doc, e.markers.Begin)
	if idx < 0 {
		return doc, false, nil
	}

	// Region begins on the line after the begin marker.
	start := len(doc)
	if nl := strings.IndexByte(doc[idx:], '\n'); nl >= 0 {
		start = idx + nl + 1
	}

	j := strings.Index(doc[start:], e.markers.End)
	if j < 0 {
		if e.strict {
			return doc, true, errors.NewSyncError(errors.CodeMissingEndMarker,
				"begin marker without matching end marker")
		}
		return doc[:start] + content, true, nil
	}

	// Keep the newline that precedes the end-marker line so the spliced
	// content stays on its own lines.
	lineStart := strings.LastIndexByte(doc[:start+j], '\n') + 1
	return doc[:start] + content + doc[lineStart-1:], true, nil
}
