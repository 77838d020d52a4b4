package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadIn runs Load from dir with a fresh viper instance.
func loadIn(t *testing.T, dir string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return Load()
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadIn(t, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 60, cfg.HTTPServer.RateLimitPerMin)
	assert.False(t, cfg.Extraction.UseLLM)
	assert.Equal(t, "auto", cfg.Extraction.Strategy)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.False(t, cfg.LLM.FallbackEnabled)
	assert.Empty(t, cfg.LLM.Providers)
	assert.False(t, cfg.LLM.HasCredential())
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
extraction:
  use_llm: true
  strategy: Auto
llm:
  retry_attempts: 2
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: ${TEST_EXTRACTOR_KEY}
      model: gpt-4o-mini
      timeout: 10s
    - name: deepseek
      enabled: true
      priority: 2
      api_key: ${TEST_EXTRACTOR_MISSING_KEY}
`)
	t.Setenv("TEST_EXTRACTOR_KEY", "sk-test")

	cfg, err := loadIn(t, dir)
	require.NoError(t, err)

	assert.True(t, cfg.Extraction.UseLLM)
	assert.Equal(t, "auto", cfg.Extraction.Strategy)
	assert.Equal(t, 2, cfg.LLM.RetryAttempts)
	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "sk-test", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "10s", cfg.LLM.Providers[0].Timeout)
	assert.Empty(t, cfg.LLM.Providers[1].APIKey)
	assert.True(t, cfg.LLM.HasCredential())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "OPENAI_API_KEY=sk-from-dotenv\nEXTRACTION_USE_LLM=true\n")
	t.Cleanup(func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("EXTRACTION_USE_LLM")
	})

	cfg, err := loadIn(t, dir)
	require.NoError(t, err)

	assert.True(t, cfg.Extraction.UseLLM)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "openai", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "sk-from-dotenv", cfg.LLM.Providers[0].APIKey)
}

func TestLoad_InvalidStrategy(t *testing.T) {
	t.Setenv("EXTRACTION_STRATEGY", "magic")

	_, err := loadIn(t, t.TempDir())
	assert.ErrorContains(t, err, "extraction.strategy")
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"no providers", LLMConfig{}, false},
		{"missing name", LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}}, true},
		{"non-positive priority", LLMConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true}}}, true},
		{"disabled ignores priority", LLMConfig{Providers: []ProviderConfig{{Name: "openai"}}}, false},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1},
			{Name: "qwen", Enabled: true, Priority: 1},
		}}, true},
		{"negative retries", LLMConfig{RetryAttempts: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}
