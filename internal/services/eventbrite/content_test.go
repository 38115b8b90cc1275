package eventbrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentDoc(body string) *StructuredContentResponse {
	return &StructuredContentResponse{
		Modules: []ContentModule{
			{Type: "text", Data: ContentModuleData{Body: ContentBody{Type: "text", Text: body}}},
		},
	}
}

func TestExtractDescription(t *testing.T) {
	text, err := ExtractDescription(contentDoc("<p>Come dance <strong>all night</strong> long.</p>"))

	require.NoError(t, err)
	assert.Equal(t, "Come dance all night long.", text)
}

func TestExtractDescription_TagsActAsWordSeparators(t *testing.T) {
	// Adjacent text nodes separated only by markup must not run together.
	text, err := ExtractDescription(contentDoc("<p>first</p><p>second</p>"))

	require.NoError(t, err)
	assert.Equal(t, "first second", text)
}

func TestExtractDescription_PunctuationNodeStaysSeparated(t *testing.T) {
	// Punctuation following a closing tag is its own text node, so the
	// single-space join leaves a space before it. This mirrors the
	// separator-joined extraction the record has always carried.
	text, err := ExtractDescription(contentDoc("<p>Come dance <strong>all night</strong>.</p>"))

	require.NoError(t, err)
	assert.Equal(t, "Come dance all night .", text)
}

func TestExtractDescription_StripsByteOrderMark(t *testing.T) {
	text, err := ExtractDescription(contentDoc("\uFEFF<p>Hello</p>"))

	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestExtractDescription_NoModules(t *testing.T) {
	_, err := ExtractDescription(&StructuredContentResponse{})
	assert.Error(t, err)

	_, err = ExtractDescription(nil)
	assert.Error(t, err)
}

func TestExtractDescriptionMarkdown(t *testing.T) {
	markdown, err := ExtractDescriptionMarkdown(contentDoc("<p>Come dance <strong>all night</strong>.</p>"))

	require.NoError(t, err)
	assert.Contains(t, markdown, "**all night**")
}

func TestExtractDescriptionMarkdown_NoModules(t *testing.T) {
	_, err := ExtractDescriptionMarkdown(&StructuredContentResponse{})
	assert.Error(t, err)
}
