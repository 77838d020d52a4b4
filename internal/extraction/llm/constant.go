package llm

const (
	// Temperature requested from the service for reproducible output.
	Temperature = 0.1

	// MaxTokens caps the size of a generated answer.
	MaxTokens = 2048

	// credentialSetting names the setting reported when no client is configured.
	credentialSetting = "llm.providers[].api_key"

	LogPrefixExtract = "llm.Extractor.Extract"
)
