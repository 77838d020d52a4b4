package heuristic

import "regexp"

// Log prefixes
const (
	LogPrefixExtract = "internal.extraction.heuristic.Extract"
)

var (
	// bulletRe matches a leading "-" or "*" bullet and the whitespace after it.
	bulletRe = regexp.MustCompile(`^[-*]\s*`)

	// keywordRe matches any trigger keyword as a whole word.
	keywordRe = regexp.MustCompile(`(?i)\b(?:action|please|will|assign|assigned|due|deliver|todo)\b`)

	// Assignee patterns. Connectors are case-insensitive, names must be capitalized.
	assignedToRe      = regexp.MustCompile(`\b(?i:assigned|assign)\s+(?i:to)\s+([A-Z][A-Za-z]*)`)
	byNameRe          = regexp.MustCompile(`\b(?i:by)\s+([A-Z][A-Za-z]*)`)
	capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

	// duePhraseRe captures the text after a due connector.
	duePhraseRe = regexp.MustCompile(`\b(?i:by|before|on|due)\s+([A-Za-z0-9 ,.\-]+)`)

	// sentenceBreakRe finds ". X" where a new sentence starts inside a due phrase.
	sentenceBreakRe = regexp.MustCompile(`\.\s+[A-Z]`)
)
