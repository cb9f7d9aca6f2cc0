package llm

import (
	"fmt"

	"github.com/helmcode/ticket-ai/pkg/config"
)

// New creates an LLM instance for the active provider in s. A missing API
// key is accepted here; callers check s.Validate before every request.
func New(s config.Settings, extra ...Option) (LLM, error) {
	opts := []Option{
		WithTimeout(s.Timeout),
		WithMaxRetries(s.MaxRetries),
	}
	if s.Model != "" {
		opts = append(opts, WithModel(s.Model))
	}
	if s.BaseURL != "" {
		opts = append(opts, WithBaseURL(s.BaseURL))
	}
	if s.MaxTokens > 0 {
		opts = append(opts, WithMaxTokens(s.MaxTokens))
	}
	opts = append(opts, extra...)

	switch s.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(s.APIKey, opts...), nil
	case config.ProviderClaude:
		return NewClaude(s.APIKey, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}

// AvailableProviders returns the names accepted by New.
func AvailableProviders() []string {
	return []string{config.ProviderOpenAI, config.ProviderClaude}
}
