package heuristic

import (
	"regexp"
	"strings"
)

// matcher infers one field from a single action line.
type matcher struct {
	name  string
	match func(line string) (string, bool)
}

// assigneeMatchers are tried in order; the first hit wins. Explicit
// assignment phrasing outranks an incidental capitalized word.
var assigneeMatchers = []matcher{
	{name: "assigned_to", match: submatch(assignedToRe)},
	{name: "by_name", match: submatch(byNameRe)},
	{name: "capitalized_word", match: matchCapitalizedWord},
}

var dueMatchers = []matcher{
	{name: "connector_phrase", match: matchDuePhrase},
}

// submatch returns a match func yielding the first capture group of re.
func submatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(line string) (string, bool) {
		m := re.FindStringSubmatch(line)
		if len(m) < 2 || m[1] == "" {
			return "", false
		}
		return m[1], true
	}
}

func matchCapitalizedWord(line string) (string, bool) {
	word := capitalizedWordRe.FindString(line)
	return word, word != ""
}

// matchDuePhrase captures what follows by/before/on/due. The phrase stops
// where a new sentence starts, so "by Monday. Assigned to Priya" yields "Monday".
func matchDuePhrase(line string) (string, bool) {
	m := duePhraseRe.FindStringSubmatch(line)
	if len(m) < 2 {
		return "", false
	}
	phrase := m[1]
	if loc := sentenceBreakRe.FindStringIndex(phrase); loc != nil {
		phrase = phrase[:loc[0]]
	}
	phrase = strings.TrimRight(strings.TrimSpace(phrase), " ,.-")
	return phrase, phrase != ""
}

// firstMatch runs matchers in order and returns the first value found.
func firstMatch(matchers []matcher, line string) (value, by string) {
	for _, m := range matchers {
		if v, ok := m.match(line); ok {
			return v, m.name
		}
	}
	return "", ""
}

func inferAssignee(line string) string {
	v, _ := firstMatch(assigneeMatchers, line)
	return v
}

func inferDue(line string) string {
	v, _ := firstMatch(dueMatchers, line)
	return v
}

// isActionLine reports whether a trimmed line is a bullet or carries a trigger keyword.
func isActionLine(line string) bool {
	return bulletRe.MatchString(line) || keywordRe.MatchString(line)
}

// stripBullet removes a leading bullet marker.
func stripBullet(line string) string {
	return bulletRe.ReplaceAllString(line, "")
}
