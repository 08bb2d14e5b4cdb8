//go:build property

package splice

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Alphanumeric generators cannot produce the "#+" marker tokens, so the
// generated prose never contains an accidental marker.
func TestSpliceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1337)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	m := DefaultMarkers()

	properties.Property("well-formed documents splice exactly between the markers", prop.ForAll(
		func(pre, body, post, content string) bool {
			doc := pre + "\n" + m.Begin + "\n" + body + "\n" + m.End + "\n" + post

			editor := NewEditor(m, false)
			updated, found, err := editor.OverwriteBlock(doc, content)
			if err != nil || !found {
				return false
			}
			return updated == pre+"\n"+m.Begin+"\n"+content+"\n"+m.End+"\n"+post
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("documents without markers are returned unchanged", prop.ForAll(
		func(doc, content string) bool {
			editor := NewEditor(m, false)
			updated, found, err := editor.OverwriteBlock(doc, content)
			return err == nil && !found && updated == doc
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("splicing is idempotent for the same content", prop.ForAll(
		func(body, content string) bool {
			doc := m.Begin + "\n" + body + "\n" + m.End + "\n"

			editor := NewEditor(m, false)
			once, _, err1 := editor.OverwriteBlock(doc, content)
			twice, _, err2 := editor.OverwriteBlock(once, content)
			return err1 == nil && err2 == nil && once == twice
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
