// Package config resolves provider credentials and model settings from a
// config file, the environment and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"

	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultClaudeModel = "claude-sonnet-4-20250514"
)

// ErrMissingCredential is matched by every ConfigurationError.
var ErrMissingCredential = errors.New("missing credential")

// ConfigurationError reports a credential that is required but not set.
type ConfigurationError struct {
	Provider string
	Key      string // environment variable that supplies the credential
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not set", e.Key)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrMissingCredential
}

// Credentials holds the settings of a single provider.
type Credentials struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key" json:"api_key"`
	Model   string `mapstructure:"model" yaml:"model" json:"model"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty" json:"base_url,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Provider   string        `mapstructure:"provider" yaml:"provider" json:"provider"`
	OpenAI     Credentials   `mapstructure:"openai" yaml:"openai" json:"openai"`
	Claude     Credentials   `mapstructure:"claude" yaml:"claude" json:"claude"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	MaxTokens  int64         `mapstructure:"max_tokens" yaml:"max_tokens" json:"max_tokens"`
}

// Settings is the resolved view of Config for the active provider. It is
// what the translator and analyzer receive.
type Settings struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	MaxTokens  int64
}

// LoadOptions carries command-line overrides.
type LoadOptions struct {
	ConfigFile string
	Provider   string
	Model      string
}

// credentialEnv maps a provider to the environment variable holding its key.
var credentialEnv = map[string]string{
	ProviderOpenAI: "OPENAI_API_KEY",
	ProviderClaude: "ANTHROPIC_API_KEY",
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:   ProviderOpenAI,
		OpenAI:     Credentials{Model: DefaultOpenAIModel},
		Claude:     Credentials{Model: DefaultClaudeModel},
		Timeout:    60 * time.Second,
		MaxRetries: 0,
		MaxTokens:  4096,
	}
}

// Load loads configuration from files and environment, then applies opts.
func Load(opts LoadOptions) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(".ticket-ai")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.AddConfigPath("$HOME/.config/ticket-ai")
	}

	v.SetEnvPrefix("TICKET_AI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider-native variable names take precedence over the prefixed ones.
	v.BindEnv("provider", "LLM_PROVIDER", "TICKET_AI_PROVIDER")
	v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("openai.model", "OPENAI_MODEL")
	v.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("claude.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("claude.model", "CLAUDE_MODEL")
	v.BindEnv("claude.base_url", "ANTHROPIC_BASE_URL")

	v.SetDefault("provider", cfg.Provider)
	v.SetDefault("openai.model", cfg.OpenAI.Model)
	v.SetDefault("claude.model", cfg.Claude.Model)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("max_retries", cfg.MaxRetries)
	v.SetDefault("max_tokens", cfg.MaxTokens)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if opts.Provider != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(opts.Provider))
	}
	if opts.Model != "" {
		switch cfg.Provider {
		case ProviderClaude:
			cfg.Claude.Model = opts.Model
		default:
			cfg.OpenAI.Model = opts.Model
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration. A missing API key is not an error
// here; see Settings.Validate.
func (c *Config) Validate() error {
	if _, ok := credentialEnv[c.Provider]; !ok {
		return fmt.Errorf("unsupported provider: %s (supported: %s, %s)", c.Provider, ProviderOpenAI, ProviderClaude)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative")
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be at least 1")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Settings resolves the configuration of the active provider.
func (c *Config) Settings() Settings {
	creds := c.OpenAI
	if c.Provider == ProviderClaude {
		creds = c.Claude
	}
	return Settings{
		Provider:   c.Provider,
		APIKey:     strings.TrimSpace(creds.APIKey),
		Model:      creds.Model,
		BaseURL:    creds.BaseURL,
		Timeout:    c.Timeout,
		MaxRetries: c.MaxRetries,
		MaxTokens:  c.MaxTokens,
	}
}

// Masked returns a copy of c with API keys hidden.
func (c *Config) Masked() *Config {
	out := *c
	out.OpenAI.APIKey = mask(c.OpenAI.APIKey)
	out.Claude.APIKey = mask(c.Claude.APIKey)
	return &out
}

func mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Validate checks the precondition shared by every model call: a credential
// must be configured. It never touches the network.
func (s Settings) Validate() error {
	if s.APIKey != "" {
		return nil
	}
	key, ok := credentialEnv[s.Provider]
	if !ok {
		key = "API key"
	}
	return &ConfigurationError{Provider: s.Provider, Key: key}
}
