package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTextColumn_NameCandidates(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected string
	}{
		{"exact match", []string{"id", "text", "label"}, "text"},
		{"substring match", []string{"id", "Tweet_Content", "date"}, "Tweet_Content"},
		{"case insensitive", []string{"ID", "REVIEW", "Score"}, "REVIEW"},
		{"priority order", []string{"comment", "text"}, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, name, err := DetectTextColumn(tt.header, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestDetectTextColumn_LongestAverageFallback(t *testing.T) {
	header := []string{"id", "payload", "score"}
	rows := [][]string{
		{"1", "a rather long free form sentence goes here", "5"},
		{"2", "another long sentence with plenty of words", "3"},
	}

	index, name, err := DetectTextColumn(header, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, "payload", name)
}

func TestDetectTextColumn_EmptyHeader(t *testing.T) {
	_, _, err := DetectTextColumn(nil, nil)
	assert.Error(t, err)
}
