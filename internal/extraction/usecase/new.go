package usecase

import (
	"context"

	"meeting-task-extractor/internal/extraction"
	pkgLog "meeting-task-extractor/pkg/log"
)

// Config selects the extraction strategy. It is read once by New.
type Config struct {
	// UseLLM is the feature flag enabling the model strategy in auto mode.
	UseLLM bool
	// CredentialSet reports whether a generation credential is configured.
	CredentialSet bool
	// Strategy forces a strategy; empty or auto resolves from the two fields above.
	Strategy extraction.Strategy
}

type implUseCase struct {
	l         pkgLog.Logger
	strategy  extraction.Strategy
	extractor extraction.Extractor
}

var _ extraction.UseCase = (*implUseCase)(nil)

// New creates a new extraction UseCase. The strategy is resolved here and
// never changes for the lifetime of the instance.
func New(l pkgLog.Logger, cfg Config, heuristic, model extraction.Extractor) *implUseCase {
	strategy := resolveStrategy(cfg)

	uc := &implUseCase{l: l, strategy: strategy, extractor: heuristic}
	if strategy == extraction.StrategyModel {
		uc.extractor = model
	}

	l.Infof(context.Background(), "extraction.usecase.New: using %s strategy (use_llm=%t, credential=%t, requested=%q)",
		strategy, cfg.UseLLM, cfg.CredentialSet, cfg.Strategy)
	return uc
}

func resolveStrategy(cfg Config) extraction.Strategy {
	switch cfg.Strategy {
	case extraction.StrategyHeuristic, extraction.StrategyModel:
		return cfg.Strategy
	}
	if cfg.UseLLM && cfg.CredentialSet {
		return extraction.StrategyModel
	}
	return extraction.StrategyHeuristic
}

// Strategy reports the strategy resolved at construction time.
func (uc *implUseCase) Strategy() extraction.Strategy {
	return uc.strategy
}
