package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meeting-task-extractor/config"
	"meeting-task-extractor/pkg/llmprovider"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/openai"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantErr   error
		wantNames []string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: errors.New("any"),
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: false, Priority: 1, APIKey: "k"},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "ordered by priority, broken ones skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 10, APIKey: "k", Model: "qwen-plus"},
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat"},
				{Name: "mystery", Enabled: true, Priority: 2, APIKey: "k"},
				{Name: "openai", Enabled: true, Priority: 3, APIKey: "k", Timeout: "not-a-duration"},
				{Name: "openai", Enabled: true, Priority: 4},
			}},
			wantNames: []string{"deepseek", "qwen"},
		},
		{
			name: "gemini compatible endpoint",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "Gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash"},
			}},
			wantNames: []string{"gemini"},
		},
		{
			name: "alibaba alias",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "alibaba", Enabled: true, Priority: 1, APIKey: "k", Timeout: "5s"},
			}},
			wantNames: []string{"qwen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("InitializeProviders() expected error, got nil")
				}
				if errors.Is(tt.wantErr, llmprovider.ErrNoProvidersConfigured) && !errors.Is(err, tt.wantErr) {
					t.Errorf("InitializeProviders() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitializeProviders() unexpected error: %v", err)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("Expected %d providers, got %d", len(tt.wantNames), len(providers))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("provider %d: expected %s, got %s", i, name, providers[i].Name())
				}
			}
		})
	}
}

func TestConfigToManagerFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"model":"gpt-test","choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-test", Timeout: "5s"},
		},
		RetryAttempts:   1,
		RetryDelay:      "10ms",
		MaxTotalTimeout: "5s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	manager, err := llmprovider.NewManagerFromConfig(providers, cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Parts: []llmprovider.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error: %v", err)
	}
	if resp.Content.Text() != "ok" || resp.ProviderName != "openai" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestConfigToManagerFlow_APIErrorInChain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("overloaded"))
	}))
	defer srv.Close()

	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", BaseURL: srv.URL},
	}}
	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{RetryDelay: time.Millisecond}, log.NewNop())

	_, err = manager.GenerateContent(context.Background(), &llmprovider.Request{})
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *openai.APIError in chain, got: %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.Body != "overloaded" {
		t.Errorf("Unexpected API error: %+v", apiErr)
	}
}

func TestNewManagerFromConfig_InvalidDurations(t *testing.T) {
	if _, err := llmprovider.NewManagerFromConfig(nil, &config.LLMConfig{RetryDelay: "soon"}, log.NewNop()); err == nil {
		t.Error("Expected error for invalid retry delay")
	}
	if _, err := llmprovider.NewManagerFromConfig(nil, &config.LLMConfig{MaxTotalTimeout: "later"}, log.NewNop()); err == nil {
		t.Error("Expected error for invalid max total timeout")
	}
}
