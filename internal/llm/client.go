package llm

import "context"

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// WebSearcher is implemented by clients whose provider can browse the web
// during generation. Callers that need URL-based lookups should type-assert
// and fall back to local fetching when the assertion fails.
type WebSearcher interface {
	// GenerateWithWebSearch generates content with the provider's web search
	// tool enabled
	GenerateWithWebSearch(ctx context.Context, prompt string, tier ModelTier) (string, error)
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	default:
		return NewAnthropicClient(config, apiKey)
	}
}
