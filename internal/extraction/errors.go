package extraction

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxSnippetLen bounds how much of an upstream body is kept on an UpstreamError.
const maxSnippetLen = 512

// ErrEmptyText is wrapped by the ValidationError returned for blank input.
var ErrEmptyText = errors.New("text is required")

// ValidationError reports caller input that cannot be processed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConfigurationError reports a strategy that was selected without the settings it needs.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("model extraction is not configured: missing %s", e.Setting)
}

// UpstreamError reports a failure of the text-generation service or of its output.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	StatusCode int
	Body       string
	Reason     string
	Err        error
}

// NewUpstreamError builds an UpstreamError, truncating body to a short snippet.
func NewUpstreamError(reason string, statusCode int, body string, err error) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       Snippet(body),
		Reason:     reason,
		Err:        err,
	}
}

func (e *UpstreamError) Error() string {
	msg := "upstream: " + e.Reason
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	// an HTTP failure is described by its status and snippet alone
	if e.Err != nil && e.StatusCode == 0 {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Snippet shortens s to at most maxSnippetLen bytes without splitting a rune.
func Snippet(s string) string {
	if len(s) <= maxSnippetLen {
		return s
	}
	cut := maxSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
