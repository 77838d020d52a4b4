package llm

import (
	"context"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/llmprovider"
	pkgLog "meeting-task-extractor/pkg/log"
)

// Generator is the text-generation client the extractor submits prompts to.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Extractor is the model-backed extraction strategy.
type Extractor struct {
	l   pkgLog.Logger
	gen Generator
}

var _ extraction.Extractor = (*Extractor)(nil)

// New creates a model Extractor. A nil gen is accepted; Extract then reports
// a ConfigurationError without contacting anything.
func New(l pkgLog.Logger, gen Generator) *Extractor {
	return &Extractor{l: l, gen: gen}
}
