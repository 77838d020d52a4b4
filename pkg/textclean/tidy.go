// Package textclean normalizes whitespace and punctuation in text shown to end users.
package textclean

import (
	"regexp"
	"strings"
)

var (
	spaceBeforePunct = regexp.MustCompile(`\s+([.,;:!?])`)
	repeatedPeriods  = regexp.MustCompile(`\.{2,}`)
	repeatedSpace    = regexp.MustCompile(`\s{2,}`)
)

// Tidy removes whitespace before punctuation, collapses repeated periods and
// whitespace runs, and trims the result. Tidy(Tidy(s)) == Tidy(s) for every s.
func Tidy(text string) string {
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = repeatedPeriods.ReplaceAllString(text, ".")
	text = repeatedSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
