package summary

import (
	"fmt"
	"strings"
)

const (
	leaderMarker  = "Leader: "
	summaryMarker = "Summary: "
)

// ParseError reports generation output that violates the expected two-line
// shape, naming the marker that was missing.
type ParseError struct {
	Marker string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("generation output missing %q marker", e.Marker)
}

// ParsedSummary is the structured result of parsing generation output.
type ParsedSummary struct {
	LeaderLine string
	Summary    string
}

// ParseSummary parses generation output into its leader line and summary.
// Double newlines are normalized to single newlines first. The first line
// must contain the "Leader: " marker; everything after the marker becomes
// the leader line. The remaining lines, joined with single spaces, must
// contain the "Summary: " marker; everything after it becomes the summary.
// A missing marker is a contract violation on the generation output and
// returns a *ParseError; no recovery is attempted.
func ParseSummary(text string) (*ParsedSummary, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, "\n\n", "\n"))
	lines := strings.Split(normalized, "\n")

	first := lines[0]
	idx := strings.Index(first, leaderMarker)
	if idx < 0 {
		return nil, &ParseError{Marker: leaderMarker}
	}
	leader := strings.TrimSpace(first[idx+len(leaderMarker):])

	rest := strings.Join(lines[1:], " ")
	idx = strings.Index(rest, summaryMarker)
	if idx < 0 {
		return nil, &ParseError{Marker: summaryMarker}
	}
	body := strings.TrimSpace(rest[idx+len(summaryMarker):])

	return &ParsedSummary{
		LeaderLine: leader,
		Summary:    body,
	}, nil
}
