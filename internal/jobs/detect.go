package jobs

import (
	"fmt"
	"strings"
)

// textColumnCandidates are matched as substrings against header names, in
// priority order.
var textColumnCandidates = []string{"text", "tweet", "content", "review", "comment", "body", "message"}

// DetectTextColumn picks the most likely text column of a tabular upload.
// Header names win; otherwise the column with the longest average cell length
// is assumed to hold the free text.
func DetectTextColumn(header []string, rows [][]string) (int, string, error) {
	if len(header) == 0 {
		return 0, "", fmt.Errorf("no columns in uploaded file")
	}

	for _, candidate := range textColumnCandidates {
		for i, name := range header {
			if strings.Contains(strings.ToLower(name), candidate) {
				return i, name, nil
			}
		}
	}

	best := 0
	bestAvg := -1.0
	for i := range header {
		total := 0
		count := 0
		for _, row := range rows {
			if i < len(row) {
				total += len(row[i])
				count++
			}
		}
		if count == 0 {
			continue
		}
		avg := float64(total) / float64(count)
		if avg > bestAvg {
			best = i
			bestAvg = avg
		}
	}
	if bestAvg < 0 {
		return 0, "", fmt.Errorf("no text column found in uploaded file")
	}
	return best, header[best], nil
}
