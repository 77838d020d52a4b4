package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/extraction/heuristic"
	pkgLog "meeting-task-extractor/pkg/log"
)

// mockExtractor returns a canned result and counts calls.
type mockExtractor struct {
	res   extraction.Result
	err   error
	calls int
}

func (m *mockExtractor) Extract(ctx context.Context, text string) (extraction.Result, error) {
	m.calls++
	return m.res, m.err
}

func TestResolveStrategy(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want extraction.Strategy
	}{
		{"flag off, no credential", Config{}, extraction.StrategyHeuristic},
		{"flag on, no credential", Config{UseLLM: true}, extraction.StrategyHeuristic},
		{"flag off, credential", Config{CredentialSet: true}, extraction.StrategyHeuristic},
		{"flag on, credential", Config{UseLLM: true, CredentialSet: true}, extraction.StrategyModel},
		{"explicit auto", Config{UseLLM: true, CredentialSet: true, Strategy: extraction.StrategyAuto}, extraction.StrategyModel},
		{"forced heuristic", Config{UseLLM: true, CredentialSet: true, Strategy: extraction.StrategyHeuristic}, extraction.StrategyHeuristic},
		{"forced model without credential", Config{Strategy: extraction.StrategyModel}, extraction.StrategyModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(pkgLog.NewNop(), tt.cfg, &mockExtractor{}, &mockExtractor{})
			assert.Equal(t, tt.want, uc.Strategy())
		})
	}
}

func TestExtract_BlankInput(t *testing.T) {
	h := &mockExtractor{}
	uc := New(pkgLog.NewNop(), Config{}, h, &mockExtractor{})

	for _, text := range []string{"", "   ", "\n\t\r\n"} {
		_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: text})

		var vErr *extraction.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "text", vErr.Field)
		assert.ErrorIs(t, err, extraction.ErrEmptyText)
	}
	assert.Zero(t, h.calls)
}

func TestExtract_RoutesToResolvedStrategy(t *testing.T) {
	h := &mockExtractor{res: extraction.Result{Tasks: []extraction.Task{{Title: "from heuristic"}}}}
	m := &mockExtractor{res: extraction.Result{Tasks: []extraction.Task{{Title: "from model"}}}}

	uc := New(pkgLog.NewNop(), Config{UseLLM: true, CredentialSet: true}, h, m)
	res, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "notes"})
	require.NoError(t, err)

	assert.Equal(t, "from model", res.Tasks[0].Title)
	assert.Equal(t, 1, m.calls)
	assert.Zero(t, h.calls)
}

func TestExtract_NoFallbackOnModelFailure(t *testing.T) {
	h := &mockExtractor{}
	upErr := extraction.NewUpstreamError("non-success response", 500, "boom", nil)
	m := &mockExtractor{err: upErr}

	uc := New(pkgLog.NewNop(), Config{UseLLM: true, CredentialSet: true}, h, m)
	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "notes"})

	var got *extraction.UpstreamError
	require.ErrorAs(t, err, &got)
	assert.Zero(t, h.calls)
}

func TestExtract_ConfigurationErrorPassesThrough(t *testing.T) {
	m := &mockExtractor{err: &extraction.ConfigurationError{Setting: "llm.providers[].api_key"}}

	uc := New(pkgLog.NewNop(), Config{Strategy: extraction.StrategyModel}, &mockExtractor{}, m)
	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "notes"})

	var cfgErr *extraction.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestExtract_NormalizesModelResult(t *testing.T) {
	long := strings.Repeat("b", 300)
	m := &mockExtractor{res: extraction.Result{
		Tasks: []extraction.Task{
			{Title: "  "},
			{Title: " Write notes ", Assignee: "Ana"},
			{Title: long},
		},
		FollowUp: "See  you ,all ..",
	}}

	uc := New(pkgLog.NewNop(), Config{Strategy: extraction.StrategyModel}, &mockExtractor{}, m)
	res, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "notes"})
	require.NoError(t, err)

	require.Len(t, res.Tasks, 2)
	assert.Equal(t, extraction.Task{Title: "Write notes", Assignee: "Ana"}, res.Tasks[0])
	assert.Equal(t, extraction.MaxTitleLen, utf8.RuneCountInString(res.Tasks[1].Title))
	assert.Equal(t, "See you,all.", res.FollowUp)
}

func TestExtract_EmptyModelResultGetsFallback(t *testing.T) {
	m := &mockExtractor{res: extraction.Result{}}

	uc := New(pkgLog.NewNop(), Config{Strategy: extraction.StrategyModel}, &mockExtractor{}, m)
	res, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "notes"})
	require.NoError(t, err)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, extraction.FallbackTaskTitle, res.Tasks[0].Title)
	assert.Equal(t, extraction.BuildFollowUp(res.Tasks), res.FollowUp)
	assert.Contains(t, res.FollowUp, extraction.FallbackTaskTitle)
}

func TestExtract_HeuristicEndToEnd(t *testing.T) {
	uc := New(pkgLog.NewNop(), Config{}, heuristic.New(pkgLog.NewNop()), nil)

	text := "Intro chatter\n- Ravi will update the roadmap by next Wednesday\nAction: book the venue\nrandom line"
	res, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: text})
	require.NoError(t, err)

	require.Len(t, res.Tasks, 2)
	assert.Equal(t, "Ravi will update the roadmap by next Wednesday", res.Tasks[0].Title)
	assert.Equal(t, "Ravi", res.Tasks[0].Assignee)
	assert.Equal(t, "next Wednesday", res.Tasks[0].Due)
	assert.Equal(t, "Action: book the venue", res.Tasks[1].Title)
	assert.Contains(t, res.FollowUp, "Ravi will update the roadmap by next Wednesday; Action: book the venue")
	assert.Equal(t, extraction.StrategyHeuristic, uc.Strategy())
}
