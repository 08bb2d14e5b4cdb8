package create

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zawatton21/org-excalidraw/internal/logging"
	"github.com/zawatton21/org-excalidraw/internal/paths"
)

// recordingOpener checks that the file already holds its template content at
// the moment the editor is launched.
type recordingOpener struct {
	t       *testing.T
	opened  string
	content string
}

func (r *recordingOpener) Open(path string) error {
	r.opened = path
	data, err := os.ReadFile(path)
	require.NoError(r.t, err, "file must exist before the editor starts")
	r.content = string(data)
	return nil
}

func TestCreateWritesTemplateBeforeOpening(t *testing.T) {
	dir := t.TempDir()
	opener := &recordingOpener{t: t}

	creator := New(dir, true, "", opener, logging.Discard())
	path, err := creator.Create()
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.NoError(t, paths.Validate(path))
	assert.Equal(t, path, opener.opened)
	assert.Equal(t, Template(), opener.content)
	assert.True(t, strings.Contains(opener.content, `"type": "excalidraw"`))
}

func TestCreatePrefixNaming(t *testing.T) {
	dir := t.TempDir()
	opener := &recordingOpener{t: t}

	creator := New(dir, false, "sketch-", opener, logging.Discard())
	path, err := creator.Create()
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "sketch-"))
	assert.True(t, strings.HasSuffix(base, paths.DrawingExt))
}

func TestCreateFailsOnMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	opener := &recordingOpener{t: t}

	creator := New(dir, true, "", opener, logging.Discard())
	_, err := creator.Create()
	require.Error(t, err)
	assert.Empty(t, opener.opened, "editor must not be launched when creation fails")
}

type failingOpener struct{}

func (failingOpener) Open(string) error { return assert.AnError }

func TestCreateReportsOpenFailure(t *testing.T) {
	dir := t.TempDir()

	creator := New(dir, true, "", failingOpener{}, logging.Discard())
	path, err := creator.Create()
	require.Error(t, err)

	// The drawing still exists with its template content.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, Template(), string(data))
}
