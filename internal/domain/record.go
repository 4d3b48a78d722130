package domain

import (
	"context"
	"time"
)

// Sentiment labels produced by the analysis pipeline.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// EmotionNeutral is the fallback emotion when no lexicon bucket matches.
const EmotionNeutral = "Neutral"

// Record is one analyzed text row as persisted in the record store.
type Record struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	CleanText  string    `json:"clean_text"`
	Sentiment  string    `json:"sentiment"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordStore is the durable persistence boundary for analyzed records.
type RecordStore interface {
	// Save persists a single record and returns its assigned ID.
	Save(ctx context.Context, record Record) (int64, error)
	// BulkSave persists a chunk of records in one round trip.
	BulkSave(ctx context.Context, records []Record) error
	// DeleteAll removes every record. Used before a bulk ingestion replaces
	// the dataset.
	DeleteAll(ctx context.Context) error
}

// DayCounts is one day of sentiment totals for the dashboard time series.
type DayCounts struct {
	Date     string `json:"date"`
	Positive int    `json:"Positive"`
	Negative int    `json:"Negative"`
	Neutral  int    `json:"Neutral"`
}

// RecordAggregates exposes the read-side queries consumed by reports.
type RecordAggregates interface {
	SentimentCounts(ctx context.Context) (map[string]int, error)
	EmotionCounts(ctx context.Context) (map[string]int, error)
	CountsByDay(ctx context.Context, limit int) ([]DayCounts, error)
	RecentCleaned(ctx context.Context, limit int) ([]string, error)
	Total(ctx context.Context) (int, error)
	AverageConfidence(ctx context.Context) (float64, error)
}
