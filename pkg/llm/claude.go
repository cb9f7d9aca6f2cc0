package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultClaudeModel = "claude-sonnet-4-20250514"

type Claude struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func NewClaude(apiKey string, opts ...Option) *Claude {
	o := newOptions(defaultClaudeModel, opts)

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(o.maxRetries),
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	if o.timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(o.timeout))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}

	return &Claude{
		client:    anthropic.NewClient(reqOpts...),
		model:     o.model,
		maxTokens: o.maxTokens,
	}
}

func NewClaudeWithModel(apiKey, model string) *Claude {
	return NewClaude(apiKey, WithModel(model))
}

func (c *Claude) Name() string { return "Claude" }

func (c *Claude) Model() string { return c.model }

// Chat sends the exchange to the Messages API. System turns are not part of
// the message list there; they are collected into the System blocks.
func (c *Claude) Chat(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case RoleUser:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			return nil, fmt.Errorf("unsupported message role: %s", m.Role)
		}
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  messages,
	})
	if err != nil {
		return nil, &ProviderError{Provider: c.Name(), Err: err}
	}

	resp := &Response{}
	for _, block := range message.Content {
		if block.Type == "text" {
			resp.Choices = append(resp.Choices, Choice{Content: block.Text})
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: c.Name(), Err: ErrEmptyResponse}
	}
	return resp, nil
}
