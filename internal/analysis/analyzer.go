package analysis

import (
	"strings"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

// Analyzer is the production implementation of domain.Analyzer. Stateless and
// safe for concurrent use.
type Analyzer struct{}

var _ domain.Analyzer = Analyzer{}

func NewAnalyzer() Analyzer {
	return Analyzer{}
}

// Analyze runs the full pipeline on one raw text. Blank input returns the
// defined neutral default without error.
func (Analyzer) Analyze(text string) (domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralResult(), nil
	}

	cleaned := Clean(text)

	// Score the cleaned form when cleaning left anything, otherwise fall
	// back to the raw text (e.g. emoji-only input).
	subject := cleaned
	if subject == "" {
		subject = text
	}

	sentiment, confidence := ClassifySentiment(subject)
	emotion := DetectEmotion(subject)

	return domain.AnalysisResult{
		CleanText:  cleaned,
		Sentiment:  sentiment,
		Confidence: confidence,
		Emotion:    emotion,
	}, nil
}
