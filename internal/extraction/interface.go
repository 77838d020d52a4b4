package extraction

import "context"

// Extractor turns raw meeting text into a Result.
// Implementations must be safe for concurrent use.
type Extractor interface {
	Extract(ctx context.Context, text string) (Result, error)
}

// UseCase is the single entry point used by the delivery layers.
type UseCase interface {
	// Extract validates the input, runs the configured strategy and returns a normalized Result.
	Extract(ctx context.Context, input ExtractInput) (Result, error)

	// Strategy reports the strategy resolved at construction time.
	Strategy() Strategy
}
