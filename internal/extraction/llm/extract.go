package llm

import (
	"context"
	"errors"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/openai"
)

// Extract asks the generation service for tasks and a follow-up and repairs
// the answer into a Result. Tasks are returned as the service produced them.
func (e *Extractor) Extract(ctx context.Context, text string) (extraction.Result, error) {
	if e.gen == nil {
		return extraction.Result{}, &extraction.ConfigurationError{Setting: credentialSetting}
	}

	resp, err := e.gen.GenerateContent(ctx, buildRequest(text))
	if err != nil {
		e.l.Warnf(ctx, "%s: generation failed: %v", LogPrefixExtract, err)
		return extraction.Result{}, toUpstreamError(err)
	}

	var content string
	if resp != nil {
		content = resp.Content.Text()
	}
	res, err := parseContent(content)
	if err != nil {
		e.l.Warnf(ctx, "%s: unparseable response: %s", LogPrefixExtract, extraction.Snippet(content))
		return extraction.Result{}, extraction.NewUpstreamError("response could not be parsed", 0, content, err)
	}

	e.l.Debugf(ctx, "%s: parsed %d task(s)", LogPrefixExtract, len(res.Tasks))
	return res, nil
}

func toUpstreamError(err error) *extraction.UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return extraction.NewUpstreamError("non-success response", apiErr.StatusCode, apiErr.Body, err)
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return extraction.NewUpstreamError("request timed out", 0, "", err)
	case errors.Is(err, context.Canceled):
		return extraction.NewUpstreamError("request canceled", 0, "", err)
	}
	return extraction.NewUpstreamError("request failed", 0, "", err)
}
