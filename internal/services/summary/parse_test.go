package summary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummary(t *testing.T) {
	parsed, err := ParseSummary("Leader: Big Fun Fest\nSummary: Come dance all night.")

	require.NoError(t, err)
	assert.Equal(t, "Big Fun Fest", parsed.LeaderLine)
	assert.Equal(t, "Come dance all night.", parsed.Summary)
}

func TestParseSummary_NormalizesDoubleNewlines(t *testing.T) {
	parsed, err := ParseSummary("Leader: Big Fun Fest\n\nSummary: Come dance all night.")

	require.NoError(t, err)
	assert.Equal(t, "Big Fun Fest", parsed.LeaderLine)
	assert.Equal(t, "Come dance all night.", parsed.Summary)
}

func TestParseSummary_JoinsMultiLineSummary(t *testing.T) {
	parsed, err := ParseSummary("Leader: Big Fun Fest\nSummary: Come dance\nall night\nlong.")

	require.NoError(t, err)
	assert.Equal(t, "Come dance all night long.", parsed.Summary)
}

func TestParseSummary_TrimsSurroundingWhitespace(t *testing.T) {
	parsed, err := ParseSummary("\nLeader: Big Fun Fest\nSummary: Come dance all night.\n")

	require.NoError(t, err)
	assert.Equal(t, "Big Fun Fest", parsed.LeaderLine)
}

func TestParseSummary_MissingLeaderMarker(t *testing.T) {
	_, err := ParseSummary("Big Fun Fest\nSummary: Come dance all night.")

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Leader: ", parseErr.Marker)
}

func TestParseSummary_MissingSummaryMarker(t *testing.T) {
	_, err := ParseSummary("Leader: Big Fun Fest\nCome dance all night.")

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Summary: ", parseErr.Marker)
}

func TestParseSummary_EmptyOutput(t *testing.T) {
	_, err := ParseSummary("")
	assert.Error(t, err)
}
