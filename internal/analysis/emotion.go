package analysis

import "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"

// emotionLexicon maps each emotion bucket to its keyword list.
var emotionLexicon = map[string][]string{
	"Happy": {
		"happy", "joy", "love", "great", "amazing", "excited", "hope", "win",
		"best", "wonderful", "fantastic", "proud", "optimistic", "celebrate",
	},
	"Angry": {
		"angry", "mad", "hate", "outrage", "furious", "disgust", "wrong",
		"terrible", "awful", "disappointed", "corrupt", "lie", "cheat",
	},
	"Sad": {
		"sad", "depressed", "loss", "cry", "grief", "sorry", "regret",
		"worried", "concern", "unfortunate", "tragic", "miss",
	},
	"Fear": {
		"fear", "scared", "afraid", "anxious", "panic", "threat", "danger",
		"crisis", "collapse", "uncertain", "nervous", "terror",
	},
}

// emotionIndex inverts emotionLexicon for single-pass token matching.
var emotionIndex = func() map[string]string {
	idx := make(map[string]string)
	for emotion, keywords := range emotionLexicon {
		for _, kw := range keywords {
			idx[kw] = emotion
		}
	}
	return idx
}()

// DetectEmotion classifies the dominant emotion of the text, or Neutral when
// no keyword matches or the text is blank.
func DetectEmotion(text string) string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return domain.EmotionNeutral
	}

	counts := make(map[string]int, len(emotionLexicon))
	for _, tok := range tokens {
		if emotion, ok := emotionIndex[tok]; ok {
			counts[emotion]++
		}
	}

	best := domain.EmotionNeutral
	bestCount := 0
	for _, emotion := range [...]string{"Happy", "Angry", "Sad", "Fear"} {
		if counts[emotion] > bestCount {
			best = emotion
			bestCount = counts[emotion]
		}
	}
	return best
}
