package analysis

// stopwords is a compact english stopword list sufficient for token display
// and emotion matching. Sentiment scoring runs over all words, not just
// content tokens, so negators like "not" are still seen by the scorer.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "but": {}, "by": {},
	"can": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {}, "me": {},
	"more": {}, "most": {}, "my": {}, "now": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "out": {},
	"over": {}, "own": {}, "s": {}, "same": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "t": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "why": {}, "will": {}, "with": {}, "you": {}, "your": {},
	"yours": {},
}

// polarity maps words to valence scores on a roughly -4..+4 scale, in the
// manner of social-media sentiment lexicons. Scores are normalized before
// classification, so only relative magnitude matters.
var polarity = map[string]float64{
	// positive
	"amazing": 2.8, "awesome": 3.1, "best": 3.2, "blessed": 2.9,
	"brilliant": 2.8, "celebrate": 2.7, "comeback": 1.3, "excellent": 2.7,
	"excited": 2.3, "fantastic": 2.6, "fire": 1.6, "five": 0.8,
	"glad": 2.0, "good": 1.9, "grateful": 2.4, "great": 3.1,
	"happiest": 3.4, "happy": 2.7, "happiness": 2.9, "helpful": 1.8,
	"hope": 1.9, "incredible": 2.6, "joy": 2.8, "kind": 2.4,
	"legendary": 2.5, "love": 3.2, "magical": 2.6, "masterpiece": 3.0,
	"nice": 1.8, "outstanding": 3.0, "perfect": 3.2, "perfectly": 2.9,
	"proud": 2.4, "promotion": 2.0, "recommend": 1.6, "smooth": 1.4,
	"stunning": 2.7, "thanks": 1.9, "thank": 1.9, "win": 2.8,
	"won": 2.7, "wonderful": 2.7, "wow": 2.1,

	// negative
	"angry": -2.3, "anxiety": -1.9, "anxious": -1.9, "awful": -2.9,
	"bland": -1.4, "broke": -1.6, "broken": -1.9, "cold": -0.6,
	"crashing": -1.8, "criminal": -2.4, "crisis": -2.3, "cry": -1.9,
	"danger": -2.4, "dead": -2.6, "depressed": -2.6, "disappointed": -2.1,
	"disaster": -3.1, "disgust": -2.9, "disorganized": -1.7,
	"drained": -1.6, "empty": -1.2, "frightening": -2.4, "frustrated": -2.2,
	"furious": -2.8, "grief": -2.5, "hate": -2.7, "heartbroken": -3.0,
	"horrendous": -3.0, "horribly": -2.7, "infuriating": -2.7,
	"letdown": -1.9, "lie": -1.9, "lost": -1.3, "low": -1.1, "mad": -2.2,
	"nightmare": -2.8, "outrage": -2.6, "outrageous": -2.5, "panic": -2.4,
	"poor": -1.9, "sad": -2.1, "scared": -2.2, "shocking": -1.6,
	"slow": -1.2, "terrible": -2.1, "terribly": -2.1, "terrifying": -2.7,
	"terror": -2.9, "threat": -2.1, "tragic": -2.7, "unacceptable": -2.3,
	"unbearably": -2.2, "uncomfortable": -1.6, "waste": -1.8,
	"worried": -1.8, "worst": -3.1, "wrong": -1.7,
}

// negations invert the valence of the following scored word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "cannot": {}, "cant": {}, "dont": {},
	"didnt": {}, "doesnt": {}, "isnt": {}, "wasnt": {}, "wont": {},
	"without": {}, "neither": {}, "nor": {},
}

// intensifiers boost (or, for dampeners, shrink) the following scored word.
var intensifiers = map[string]float64{
	"absolutely": 0.29, "completely": 0.25, "extremely": 0.29,
	"incredibly": 0.29, "really": 0.27, "so": 0.25, "totally": 0.26,
	"very": 0.27, "deeply": 0.27, "utterly": 0.29,
	"barely": -0.29, "hardly": -0.29, "slightly": -0.27, "somewhat": -0.25,
}
