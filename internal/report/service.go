package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/analysis"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

const (
	timeSeriesDayLimit = 30
	recentTextLimit    = 500
	topWordLimit       = 20
)

// WordCount is one entry of the dashboard word frequency chart.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Dashboard is the aggregate payload for the visualization page.
type Dashboard struct {
	Total             int                `json:"total"`
	SentimentCounts   map[string]int     `json:"sentiment_distribution"`
	EmotionCounts     map[string]int     `json:"emotion_distribution"`
	SentimentOverTime []domain.DayCounts `json:"sentiment_over_time"`
	TopWords          []WordCount        `json:"top_words"`
}

// Summary is the insights page payload: a plain-text report plus the raw
// counts it was built from.
type Summary struct {
	Summary string                    `json:"summary"`
	Counts  map[string]map[string]int `json:"counts"`
}

// Service computes report aggregates from the record store.
type Service struct {
	aggregates domain.RecordAggregates
	group      singleflight.Group
}

func NewService(aggregates domain.RecordAggregates) *Service {
	return &Service{aggregates: aggregates}
}

// Dashboard returns chart data. The sentiment distribution always carries all
// three labels so charts render stable axes on an empty dataset.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	result, err, _ := s.group.Do("dashboard", func() (any, error) {
		return s.buildDashboard(ctx)
	})
	if err != nil {
		return Dashboard{}, err
	}
	return result.(Dashboard), nil
}

func (s *Service) buildDashboard(ctx context.Context) (Dashboard, error) {
	total, err := s.aggregates.Total(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}

	sentimentCounts, err := s.aggregates.SentimentCounts(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}
	ensureSentimentKeys(sentimentCounts)

	emotionCounts, err := s.aggregates.EmotionCounts(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}

	overTime, err := s.aggregates.CountsByDay(ctx, timeSeriesDayLimit)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}
	if overTime == nil {
		overTime = []domain.DayCounts{}
	}

	texts, err := s.aggregates.RecentCleaned(ctx, recentTextLimit)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}

	return Dashboard{
		Total:             total,
		SentimentCounts:   sentimentCounts,
		EmotionCounts:     emotionCounts,
		SentimentOverTime: overTime,
		TopWords:          topWords(texts, topWordLimit),
	}, nil
}

// Summary returns the plain-text insights report.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	result, err, _ := s.group.Do("summary", func() (any, error) {
		return s.buildSummary(ctx)
	})
	if err != nil {
		return Summary{}, err
	}
	return result.(Summary), nil
}

func (s *Service) buildSummary(ctx context.Context) (Summary, error) {
	total, err := s.aggregates.Total(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build summary: %w", err)
	}
	if total == 0 {
		return Summary{
			Summary: "No data analyzed yet. Upload and run analysis first.",
			Counts:  map[string]map[string]int{},
		}, nil
	}

	sentimentCounts, err := s.aggregates.SentimentCounts(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build summary: %w", err)
	}

	emotionCounts, err := s.aggregates.EmotionCounts(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build summary: %w", err)
	}

	avgConfidence, err := s.aggregates.AverageConfidence(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build summary: %w", err)
	}

	return Summary{
		Summary: summaryText(total, sentimentCounts, emotionCounts, avgConfidence),
		Counts: map[string]map[string]int{
			"sentiment": sentimentCounts,
			"emotion":   emotionCounts,
		},
	}, nil
}

func summaryText(total int, sentimentCounts, emotionCounts map[string]int, avgConfidence float64) string {
	analyzed := 0
	for _, count := range sentimentCounts {
		analyzed += count
	}

	separator := strings.Repeat("=", 50)
	lines := []string{
		separator,
		"  TWITTER SENTIMENT ANALYSIS - DATA DRIVEN EMOTION",
		"  Automated Report",
		separator,
		fmt.Sprintf("  Total Records     : %d", total),
		fmt.Sprintf("  Analyzed Records  : %d", analyzed),
		"",
		"  SENTIMENT DISTRIBUTION",
		fmt.Sprintf("  Positive  : %d", sentimentCounts[domain.SentimentPositive]),
		fmt.Sprintf("  Neutral   : %d", sentimentCounts[domain.SentimentNeutral]),
		fmt.Sprintf("  Negative  : %d", sentimentCounts[domain.SentimentNegative]),
		fmt.Sprintf("  Dominant  : %s", dominantLabel(sentimentCounts)),
		"",
		"  EMOTION DISTRIBUTION",
	}
	for _, entry := range sortedByCount(emotionCounts) {
		lines = append(lines, fmt.Sprintf("  %-12s: %d", entry.Word, entry.Count))
	}
	lines = append(lines,
		fmt.Sprintf("  Dominant  : %s", dominantLabel(emotionCounts)),
		"",
		fmt.Sprintf("  AVG CONFIDENCE    : %.2f%%", avgConfidence*100),
		separator,
	)
	return strings.Join(lines, "\n")
}

func ensureSentimentKeys(counts map[string]int) {
	for _, label := range []string{domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral} {
		if _, exists := counts[label]; !exists {
			counts[label] = 0
		}
	}
}

func dominantLabel(counts map[string]int) string {
	dominant := "N/A"
	best := 0
	for label, count := range counts {
		if count > best {
			dominant = label
			best = count
		}
	}
	return dominant
}

// topWords counts pipeline tokens across the recent cleaned texts, so
// stopwords never clutter the word chart.
func topWords(texts []string, limit int) []WordCount {
	frequency := make(map[string]int)
	for _, text := range texts {
		for _, token := range analysis.Tokenize(text) {
			frequency[token]++
		}
	}

	words := sortedByCount(frequency)
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func sortedByCount(counts map[string]int) []WordCount {
	entries := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, WordCount{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
