package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"meeting-task-extractor/config"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/openai"
)

// Default endpoints of the OpenAI-compatible vendors
var defaultBaseURLs = map[string]string{
	"openai":   openai.DefaultBaseURL,
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"gemini":   "https://generativelanguage.googleapis.com/v1beta/openai",
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize, including those without an API key, are
// skipped with a warning instead of failing the entire service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	if name == "alibaba" {
		name = "qwen"
	}

	defaultURL, ok := defaultBaseURLs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultURL
	}

	timeout := openai.DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}

// NewManagerFromConfig parses the durations of cfg into a manager Config.
func NewManagerFromConfig(providers []Provider, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	mcfg := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}

	if cfg.RetryDelay != "" {
		d, err := time.ParseDuration(cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid llm.retry_delay %q: %w", cfg.RetryDelay, err)
		}
		mcfg.RetryDelay = d
	}
	if cfg.MaxTotalTimeout != "" {
		d, err := time.ParseDuration(cfg.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid llm.max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
		mcfg.MaxTotalTimeout = d
	}

	return NewManager(providers, mcfg, l), nil
}
