package summary

import (
	"fmt"
	"regexp"

	"github.com/ternarybob/eventbrief/internal/models"
)

// DefaultPromptTemplate is the stock curator prompt. Callers may supply
// their own template; placeholders reference EventRecord fields by name.
const DefaultPromptTemplate = `You are a journalist writing a calendar of events, and need to create succinct, fun, and energizing summaries of events in 1-2 sentences. You will be given a description of an event you need to summarize; please respond with your brief, fun, and engaging summary.

Respond with exactly two lines. The first line must begin with "Leader: " followed by a short hook for the event. The second line must begin with "Summary: " followed by the 1-2 sentence summary.

Event Title: {title}
Event Subtitle: {subtitle}
Event Venue: {venue_name}, {venue_address}
Event Times ({timezone}): {start_time} to {end_time}
Tickets:
{tickets}
Event Description:
{description}`

// placeholderPattern matches {field-name} references in prompt templates.
// Allows alphanumeric characters, hyphens, and underscores.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_-]+)\}`)

// FormatError reports a template placeholder that names no field present on
// the record at format time.
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("prompt template references unknown field %q", e.Field)
}

// FormatPrompt renders the template by substituting every {field}
// placeholder with the corresponding assembled record field. Substitution is
// name-driven: record field order never affects the output. A placeholder
// that matches no field fails with a *FormatError.
func FormatPrompt(template string, record *models.EventRecord) (string, error) {
	fields := record.PromptFields()

	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := fields[match[1]]; !ok {
			return "", &FormatError{Field: match[1]}
		}
	}

	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		return fields[match[1:len(match)-1]]
	})

	return result, nil
}
