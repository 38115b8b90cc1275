package eventbrite

import "strings"

// ExtractEventID derives the platform event ID from a public listing URL.
// Listing URLs end in a slug whose final hyphen-separated token is the
// numeric ID, e.g. ".../e/greenermind-summit-2023-tickets-576308392917".
//
// The function is total: no validation is performed, and malformed input
// yields a malformed token that the API will reject with its own error.
func ExtractEventID(eventURL string) string {
	id := eventURL
	if i := strings.Index(id, "?"); i >= 0 {
		id = id[:i]
	}
	segments := strings.Split(id, "/")
	id = segments[len(segments)-1]
	tokens := strings.Split(id, "-")
	return tokens[len(tokens)-1]
}
