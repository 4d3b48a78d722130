package analysis

import (
	"regexp"
	"strings"
)

var (
	urlRE      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionRE  = regexp.MustCompile(`@\w+`)
	hashtagRE  = regexp.MustCompile(`#\w+`)
	retweetRE  = regexp.MustCompile(`(?i)rt\s*:`)
	nonWordRE  = regexp.MustCompile(`[^\w\s]`)
	multiWSRE  = regexp.MustCompile(`\s+`)
)

// Clean removes URLs, @mentions, hashtags and special characters, lowercases,
// and collapses whitespace. Blank or non-text input yields "".
func Clean(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return ""
	}
	t = urlRE.ReplaceAllString(t, "")
	t = mentionRE.ReplaceAllString(t, "")
	t = hashtagRE.ReplaceAllString(t, "")
	t = retweetRE.ReplaceAllString(t, "")
	t = nonWordRE.ReplaceAllString(t, " ")
	t = multiWSRE.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Tokenize cleans the text, splits it into words, and drops stopwords and
// single-character tokens.
func Tokenize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 1 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
