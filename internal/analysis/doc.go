// Package analysis implements the text-analysis pipeline.
//
// Cleaning strips social-media noise (URLs, mentions, hashtags), the sentiment
// scorer blends lexicon polarity with negation and intensifier handling, and
// the emotion detector matches keyword buckets. All functions are pure; the
// Analyzer never fails on blank input and returns a defined neutral default.
package analysis
