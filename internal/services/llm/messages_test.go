package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/eventbrief/internal/interfaces"
)

func TestConvertMessagesToClaude(t *testing.T) {
	messages := []interfaces.Message{
		{Role: "system", Content: "You are a journalist."},
		{Role: "user", Content: "Summarize this event."},
		{Role: "assistant", Content: "Leader: ..."},
	}

	claudeMessages, systemText, err := convertMessagesToClaude(messages)

	require.NoError(t, err)
	assert.Equal(t, "You are a journalist.", systemText)
	assert.Len(t, claudeMessages, 2, "system message is extracted, not converted")
}

func TestConvertMessagesToClaude_Empty(t *testing.T) {
	_, _, err := convertMessagesToClaude(nil)
	assert.Error(t, err)
}

func TestConvertMessagesToClaude_RequiresUserMessage(t *testing.T) {
	_, _, err := convertMessagesToClaude([]interfaces.Message{
		{Role: "system", Content: "You are a journalist."},
	})
	assert.Error(t, err)
}

func TestConvertMessagesToGemini(t *testing.T) {
	messages := []interfaces.Message{
		{Role: "system", Content: "You are a journalist."},
		{Role: "user", Content: "Summarize this event."},
	}

	contents, systemText, err := convertMessagesToGemini(messages)

	require.NoError(t, err)
	assert.Equal(t, "You are a journalist.", systemText)
	assert.Len(t, contents, 1)
}

func TestConvertMessagesToGemini_RequiresUserMessage(t *testing.T) {
	_, _, err := convertMessagesToGemini([]interfaces.Message{
		{Role: "assistant", Content: "hello"},
	})
	assert.Error(t, err)
}
