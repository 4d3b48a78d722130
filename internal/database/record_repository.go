package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/metrics"
)

// RecordRepo is the Postgres implementation of domain.RecordStore and
// domain.RecordAggregates.
type RecordRepo struct {
	pool *pgxpool.Pool
}

func NewRecordRepo(pool *pgxpool.Pool) *RecordRepo {
	return &RecordRepo{pool: pool}
}

var (
	_ domain.RecordStore      = (*RecordRepo)(nil)
	_ domain.RecordAggregates = (*RecordRepo)(nil)
)

func (r *RecordRepo) Save(ctx context.Context, record domain.Record) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO records (text, clean_text, sentiment, emotion, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, record.Text, record.CleanText, record.Sentiment, record.Emotion, record.Confidence, record.CreatedAt).Scan(&id)

	if err != nil {
		metrics.RecordSavesTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("failed to save record: %w", err)
	}
	metrics.RecordSavesTotal.WithLabelValues("ok").Inc()
	return id, nil
}

func (r *RecordRepo) BulkSave(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"records"},
		[]string{"text", "clean_text", "sentiment", "emotion", "confidence", "created_at"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			record := records[i]
			return []any{record.Text, record.CleanText, record.Sentiment, record.Emotion, record.Confidence, record.CreatedAt}, nil
		}),
	)
	if err != nil {
		metrics.RecordSavesTotal.WithLabelValues("error").Add(float64(len(records)))
		return fmt.Errorf("failed to bulk save %d records: %w", len(records), err)
	}
	metrics.RecordSavesTotal.WithLabelValues("ok").Add(float64(len(records)))
	return nil
}

func (r *RecordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "TRUNCATE records RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

func (r *RecordRepo) SentimentCounts(ctx context.Context) (map[string]int, error) {
	return r.countsBy(ctx, "sentiment")
}

func (r *RecordRepo) EmotionCounts(ctx context.Context) (map[string]int, error) {
	return r.countsBy(ctx, "emotion")
}

func (r *RecordRepo) countsBy(ctx context.Context, column string) (map[string]int, error) {
	// column is one of two fixed identifiers, never user input.
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s, COUNT(*) FROM records GROUP BY %s
	`, column, column))
	if err != nil {
		return nil, fmt.Errorf("failed to count records by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		counts[label] = count
	}
	return counts, rows.Err()
}

// CountsByDay returns up to limit days of sentiment totals in chronological
// order, most recent days selected first.
func (r *RecordRepo) CountsByDay(ctx context.Context, limit int) ([]domain.DayCounts, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS day,
		       COUNT(*) FILTER (WHERE sentiment = 'Positive'),
		       COUNT(*) FILTER (WHERE sentiment = 'Negative'),
		       COUNT(*) FILTER (WHERE sentiment = 'Neutral')
		FROM records
		GROUP BY created_at::date
		ORDER BY created_at::date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to count records by day: %w", err)
	}
	defer rows.Close()

	var days []domain.DayCounts
	for rows.Next() {
		var day domain.DayCounts
		if err := rows.Scan(&day.Date, &day.Positive, &day.Negative, &day.Neutral); err != nil {
			return nil, fmt.Errorf("failed to scan day counts: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days, nil
}

func (r *RecordRepo) RecentCleaned(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT clean_text FROM records
		WHERE clean_text <> ''
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent cleaned texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan cleaned text: %w", err)
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

func (r *RecordRepo) AverageConfidence(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.pool.QueryRow(ctx, "SELECT COALESCE(AVG(confidence), 0) FROM records").Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average confidence: %w", err)
	}
	return avg, nil
}

func (r *RecordRepo) Total(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM records").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return total, nil
}
