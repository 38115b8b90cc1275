package eventbrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEventID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain listing url",
			url:  "https://site/e/my-event-12345",
			want: "12345",
		},
		{
			name: "query string ignored",
			url:  "https://site/e/my-event-12345?ref=abc",
			want: "12345",
		},
		{
			name: "real-world slug",
			url:  "https://www.eventbrite.com/e/greenermind-summit-2023-tickets-576308392917",
			want: "576308392917",
		},
		{
			name: "multiple query params",
			url:  "https://site/e/my-event-12345?aff=x&ref=abc",
			want: "12345",
		},
		{
			name: "no hyphens in slug",
			url:  "https://site/e/12345",
			want: "12345",
		},
		{
			name: "malformed input yields malformed token",
			url:  "not a url at all",
			want: "not a url at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEventID(tt.url))
		})
	}
}
