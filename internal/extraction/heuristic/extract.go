package heuristic

import (
	"context"
	"strings"

	"meeting-task-extractor/internal/extraction"
)

// Extract turns raw text into tasks and a follow-up message.
// The error is always nil; it exists to satisfy extraction.Extractor.
func (e *Extractor) Extract(ctx context.Context, text string) (extraction.Result, error) {
	tasks := make([]extraction.Task, 0)

	for _, line := range splitLines(text) {
		if !isActionLine(line) {
			continue
		}

		cleaned := strings.TrimSpace(stripBullet(line))
		if cleaned == "" {
			continue
		}

		tasks = append(tasks, extraction.Task{
			Title:    extraction.TruncateTitle(cleaned),
			Assignee: inferAssignee(cleaned),
			Due:      inferDue(cleaned),
		})
	}

	if len(tasks) == 0 {
		e.l.Debugf(ctx, "%s: no action lines found, using fallback task", LogPrefixExtract)
		tasks = append(tasks, extraction.FallbackTask())
	}

	e.l.Debugf(ctx, "%s: extracted %d task(s)", LogPrefixExtract, len(tasks))

	return extraction.Result{
		Tasks:    tasks,
		FollowUp: extraction.BuildFollowUp(tasks),
	}, nil
}

// splitLines splits text on line breaks, trims each line and drops blank ones.
func splitLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
