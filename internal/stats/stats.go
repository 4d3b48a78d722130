// Package stats maintains the in-memory running aggregate for one stream session.
package stats

import (
	"sync"
	"time"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

// SessionStats counts analyzed records per sentiment and emotion since the
// last reset. Updates come from a single writer (the stream loop); snapshots
// may be taken concurrently, so the small struct is guarded by a mutex.
type SessionStats struct {
	mu        sync.Mutex
	total     uint64
	sentiment map[string]uint64
	emotion   map[string]uint64
	startedAt *time.Time
}

func New() *SessionStats {
	return &SessionStats{
		sentiment: emptySentiment(),
		emotion:   make(map[string]uint64),
	}
}

func emptySentiment() map[string]uint64 {
	return map[string]uint64{
		domain.SentimentPositive: 0,
		domain.SentimentNegative: 0,
		domain.SentimentNeutral:  0,
	}
}

// Update increments the total plus the sentiment and emotion buckets.
func (s *SessionStats) Update(sentiment, emotion string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.sentiment[sentiment]++
	s.emotion[emotion]++
}

// MarkStarted records when the current session began.
func (s *SessionStats) MarkStarted(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	started := t
	s.startedAt = &started
}

// Snapshot returns an independent copy; callers never observe a bucket map
// mutating mid-read.
func (s *SessionStats) Snapshot() domain.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.StatsSnapshot{
		Total:     s.total,
		Sentiment: make(map[string]uint64, len(s.sentiment)),
		Emotion:   make(map[string]uint64, len(s.emotion)),
	}
	for k, v := range s.sentiment {
		snap.Sentiment[k] = v
	}
	for k, v := range s.emotion {
		snap.Emotion[k] = v
	}
	if s.startedAt != nil {
		started := *s.startedAt
		snap.StartedAt = &started
	}
	return snap
}

// Reset zeroes all counters and clears the start time.
func (s *SessionStats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = 0
	s.sentiment = emptySentiment()
	s.emotion = make(map[string]uint64)
	s.startedAt = nil
}
