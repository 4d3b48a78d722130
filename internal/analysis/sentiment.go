package analysis

import (
	"math"
	"strings"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

const (
	// positiveThreshold and negativeThreshold bound the Neutral band on the
	// normalized -1..1 score.
	positiveThreshold = 0.15
	negativeThreshold = -0.15

	// negationScalar flips and dampens a negated word's valence.
	negationScalar = -0.74

	// normalizationAlpha flattens the valence sum into -1..1.
	normalizationAlpha = 15.0
)

// ClassifySentiment scores the text and returns (label, confidence).
// Blank input is Neutral with 0.5 confidence. Confidence grows with the
// normalized score magnitude for polar labels and shrinks toward 0.5 as a
// Neutral score approaches the thresholds, both capped at 0.99 and rounded
// to two decimals.
func ClassifySentiment(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return domain.SentimentNeutral, 0.5
	}

	score := scoreText(text)

	var label string
	var conf float64
	switch {
	case score > positiveThreshold:
		label = domain.SentimentPositive
		conf = math.Min(0.99, 0.5+math.Abs(score))
	case score < negativeThreshold:
		label = domain.SentimentNegative
		conf = math.Min(0.99, 0.5+math.Abs(score))
	default:
		label = domain.SentimentNeutral
		conf = 0.5 + (0.3 - math.Abs(score))
	}

	return label, round2(conf)
}

// scoreText sums lexicon valences over the cleaned words, applying negation
// and intensifier context from the preceding two words, then normalizes
// the sum into -1..1.
func scoreText(text string) float64 {
	words := strings.Fields(Clean(text))
	if len(words) == 0 {
		return 0
	}

	var sum float64
	for i, w := range words {
		valence, ok := polarity[w]
		if !ok {
			continue
		}

		// Look back up to two words for modifiers.
		for back := 1; back <= 2 && i-back >= 0; back++ {
			prev := words[i-back]
			if boost, ok := intensifiers[prev]; ok {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
			if _, neg := negations[prev]; neg {
				valence *= negationScalar
			}
		}

		sum += valence
	}

	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
