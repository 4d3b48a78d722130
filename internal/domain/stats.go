package domain

import "time"

// StatsSnapshot is an immutable copy of the running session aggregate.
// The maps are owned by the snapshot and never shared with the live stats.
type StatsSnapshot struct {
	Total     uint64            `json:"total"`
	Sentiment map[string]uint64 `json:"sentiment"`
	Emotion   map[string]uint64 `json:"emotion"`
	StartedAt *time.Time        `json:"started_at,omitempty"`
}
