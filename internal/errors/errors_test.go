package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	testCases := []struct {
		name string
		err  *SyncError
		want string
	}{
		{
			name: "code and message",
			err:  NewSyncError(CodeMissingMarkers, "no markers"),
			want: "[missing_markers]: no markers",
		},
		{
			name: "with path",
			err:  NewValidationError(CodeInvalidExtension, "bad extension").WithPath("/d/x.txt"),
			want: "[invalid_extension] /d/x.txt: bad extension",
		},
		{
			name: "with cause",
			err:  NewIOError(CodeReadFailed, "reading drawing", fmt.Errorf("boom")),
			want: "[read_failed]: reading drawing: boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := NewIOError(CodeWriteFailed, "writing document", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsMatchesTypeAndCode(t *testing.T) {
	err := NewSyncError(CodeMissingEndMarker, "whatever").WithPath("/a")

	assert.ErrorIs(t, err, NewSyncError(CodeMissingEndMarker, "other message"))
	assert.NotErrorIs(t, err, NewSyncError(CodeMissingMarkers, "other message"))
	assert.NotErrorIs(t, err, NewConfigError(CodeMissingEndMarker, "wrong type"))
}

func TestIsRecoverable(t *testing.T) {
	assert.False(t, IsRecoverable(NewConfigError(CodeDirectoryMissing, "gone")))
	assert.True(t, IsRecoverable(NewValidationError(CodeInvalidExtension, "bad")))
	assert.True(t, IsRecoverable(NewIOError(CodeReadFailed, "read", nil)))
	assert.True(t, IsRecoverable(NewSyncError(CodeMissingMarkers, "none")))
	assert.True(t, IsRecoverable(errors.New("plain error")))
}
