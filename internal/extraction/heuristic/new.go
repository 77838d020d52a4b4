package heuristic

import (
	"meeting-task-extractor/internal/extraction"
	pkgLog "meeting-task-extractor/pkg/log"
)

// Extractor is the rule-based extraction strategy. It is deterministic and never fails.
type Extractor struct {
	l pkgLog.Logger
}

var _ extraction.Extractor = (*Extractor)(nil)

// New creates a new heuristic Extractor.
func New(l pkgLog.Logger) *Extractor {
	return &Extractor{l: l}
}
