package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/textclean"
)

var errNoJSONObject = errors.New("no JSON object found")

// modelResult is the shape the service is asked to produce.
type modelResult struct {
	Tasks    []modelTask `json:"tasks"`
	FollowUp looseString `json:"followUp"`
}

type modelTask struct {
	Title    looseString `json:"title"`
	Assignee looseString `json:"assignee"`
	Due      looseString `json:"due"`
	Priority looseString `json:"priority"`
}

// looseString accepts a JSON string, number, bool or null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(t)
	case float64, bool:
		*s = looseString(fmt.Sprint(t))
	default:
		return fmt.Errorf("unsupported JSON value %s", string(data))
	}
	return nil
}

// parseContent decodes the service output, first as-is and then from the
// substring between the first '{' and the last '}'.
func parseContent(content string) (extraction.Result, error) {
	res, err := decodeObject(strings.TrimSpace(content))
	if err == nil {
		return res, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return extraction.Result{}, errNoJSONObject
	}
	return decodeObject(content[start : end+1])
}

func decodeObject(s string) (extraction.Result, error) {
	if !strings.HasPrefix(s, "{") {
		return extraction.Result{}, errNoJSONObject
	}

	var raw modelResult
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return extraction.Result{}, err
	}

	tasks := make([]extraction.Task, 0, len(raw.Tasks))
	for _, t := range raw.Tasks {
		tasks = append(tasks, extraction.Task{
			Title:    strings.TrimSpace(string(t.Title)),
			Assignee: strings.TrimSpace(string(t.Assignee)),
			Due:      strings.TrimSpace(string(t.Due)),
			Priority: strings.TrimSpace(string(t.Priority)),
		})
	}

	return extraction.Result{
		Tasks:    tasks,
		FollowUp: textclean.Tidy(string(raw.FollowUp)),
	}, nil
}
