package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"meeting-task-extractor/config"
	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/extraction/heuristic"
	"meeting-task-extractor/internal/extraction/llm"
	"meeting-task-extractor/internal/extraction/usecase"
	"meeting-task-extractor/pkg/llmprovider"
	"meeting-task-extractor/pkg/log"
)

// NewExtractionUseCase wires both strategies from cfg. A non-empty override
// replaces extraction.strategy from the config.
func NewExtractionUseCase(ctx context.Context, cfg *config.Config, l log.Logger, override string) (extraction.UseCase, error) {
	requested := cfg.Extraction.Strategy
	if override != "" {
		requested = override
	}
	strategy, ok := extraction.ParseStrategy(requested)
	if !ok {
		return nil, fmt.Errorf("unknown extraction strategy %q", requested)
	}

	gen, err := newGenerator(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, err
	}

	// a nil *Manager must reach llm.New as a nil interface
	var g llm.Generator
	if gen != nil {
		g = gen
	}
	modelExtractor := llm.New(l, g)

	return usecase.New(l, usecase.Config{
		UseLLM:        cfg.Extraction.UseLLM,
		CredentialSet: gen != nil,
		Strategy:      strategy,
	}, heuristic.New(l), modelExtractor), nil
}

// newGenerator returns nil when no provider has a usable credential.
func newGenerator(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	if !cfg.HasCredential() {
		return nil, nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, cfg, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Warnf(ctx, "bootstrap.newGenerator: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return llmprovider.NewManagerFromConfig(providers, cfg, l)
}
