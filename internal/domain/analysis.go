package domain

// AnalysisResult is the outcome of running one text through the pipeline.
type AnalysisResult struct {
	CleanText  string
	Sentiment  string
	Confidence float64
	Emotion    string
}

// NeutralResult is the defined default used when analysis cannot run
// (blank input) or fails for a single item.
func NeutralResult() AnalysisResult {
	return AnalysisResult{
		Sentiment:  SentimentNeutral,
		Confidence: 0.5,
		Emotion:    EmotionNeutral,
	}
}

// Analyzer maps raw text to a cleaned form plus sentiment and emotion labels.
// Implementations must return a neutral default for blank input rather than
// an error; errors are reserved for genuine per-item failures, which callers
// recover from at the item boundary.
type Analyzer interface {
	Analyze(text string) (AnalysisResult, error)
}
