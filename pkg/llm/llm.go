package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Role tags a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged turn.
type Message struct {
	Role    Role
	Content string
}

// Request is one chat exchange. An empty Model falls back to the client default.
type Request struct {
	Model    string
	Messages []Message
}

// Choice is a candidate answer.
type Choice struct {
	Content string
}

// Response holds the candidates returned by a provider.
type Response struct {
	Choices []Choice
}

// ErrEmptyResponse is wrapped in a ProviderError when no candidate came back.
var ErrEmptyResponse = errors.New("empty response")

// FirstText returns the content of the first choice.
func (r *Response) FirstText() (string, error) {
	if r == nil || len(r.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return r.Choices[0].Content, nil
}

// LLM is the model client used by the translator and the analyzer.
type LLM interface {
	Chat(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
}

// ProviderError wraps any failure reported by a model provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// options shared by every provider.
type options struct {
	baseURL    string
	model      string
	timeout    time.Duration
	maxRetries int
	maxTokens  int64
	httpClient *http.Client
}

// Option configures a provider.
type Option func(*options)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(o *options) { o.model = model }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxRetries sets how often the provider SDK retries a failed request.
func WithMaxRetries(n int) Option {
	return func(o *options) { o.maxRetries = n }
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int64) Option {
	return func(o *options) { o.maxTokens = n }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func newOptions(model string, opts []Option) options {
	o := options{
		model:     model,
		timeout:   60 * time.Second,
		maxTokens: 4096,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
