package extraction

import (
	"strings"
	"unicode/utf8"

	"meeting-task-extractor/pkg/textclean"
)

const (
	// FallbackTaskTitle is the single task returned when no action line is found.
	FallbackTaskTitle = "Review meeting notes and propose next steps"

	// MaxTitleLen is the maximum title length in runes, ellipsis included.
	MaxTitleLen = 250

	// Ellipsis marks a truncated title.
	Ellipsis = "…"

	followUpPreamble = "Thanks everyone for the discussion. Here are the action items we captured:"
	followUpClosing  = "Please confirm owners and timelines."
)

// FallbackTask returns the task substituted for an empty task list.
func FallbackTask() Task {
	return Task{Title: FallbackTaskTitle}
}

// TruncateTitle shortens title to MaxTitleLen runes, ending it with Ellipsis when cut.
func TruncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= MaxTitleLen {
		return title
	}
	runes := []rune(title)
	return string(runes[:MaxTitleLen-utf8.RuneCountInString(Ellipsis)]) + Ellipsis
}

// BuildFollowUp renders the follow-up message for tasks and tidies it.
func BuildFollowUp(tasks []Task) string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	msg := followUpPreamble + " " + strings.Join(titles, "; ") + ". " + followUpClosing
	return textclean.Tidy(msg)
}
