package http

import (
	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/textclean"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{Text: r.Text}
}

// --- Response DTOs ---

type taskResp struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee,omitempty"`
	Due      string `json:"due,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type extractResp struct {
	Tasks    []taskResp `json:"tasks"`
	FollowUp string     `json:"followUp"`
}

func (h *handler) newExtractResp(res extraction.Result) extractResp {
	tasks := make([]taskResp, len(res.Tasks))
	for i, t := range res.Tasks {
		tasks[i] = taskResp{
			Title:    t.Title,
			Assignee: t.Assignee,
			Due:      t.Due,
			Priority: t.Priority,
		}
	}
	return extractResp{
		Tasks:    tasks,
		FollowUp: textclean.Tidy(res.FollowUp),
	}
}
