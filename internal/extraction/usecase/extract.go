package usecase

import (
	"context"
	"strings"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/textclean"
)

// Extract validates the input, runs the resolved strategy and normalizes its result.
// A failing model strategy is not retried with the heuristic one.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.Result, error) {
	if strings.TrimSpace(input.Text) == "" {
		return extraction.Result{}, &extraction.ValidationError{Field: "text", Err: extraction.ErrEmptyText}
	}

	res, err := uc.extractor.Extract(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: %s strategy failed: %v", uc.strategy, err)
		return extraction.Result{}, err
	}

	res = normalize(res)
	uc.l.Infof(ctx, "extraction.usecase.Extract: %s strategy returned %d task(s)", uc.strategy, len(res.Tasks))
	return res, nil
}

// normalize enforces the Result invariants on whatever a strategy produced.
func normalize(res extraction.Result) extraction.Result {
	tasks := make([]extraction.Task, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		t.Title = extraction.TruncateTitle(t.Title)
		tasks = append(tasks, t)
	}

	if len(tasks) == 0 {
		tasks = append(tasks, extraction.FallbackTask())
	}

	followUp := textclean.Tidy(res.FollowUp)
	if followUp == "" {
		followUp = extraction.BuildFollowUp(tasks)
	}

	return extraction.Result{Tasks: tasks, FollowUp: followUp}
}
