package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const defaultOpenAIModel = "gpt-3.5-turbo"

// OpenAI talks to the chat completions API of OpenAI or any compatible endpoint.
type OpenAI struct {
	client    openai.Client
	model     string
	maxTokens int64
}

func NewOpenAI(apiKey string, opts ...Option) *OpenAI {
	o := newOptions(defaultOpenAIModel, opts)

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

	return &OpenAI{
		client:    openai.NewClient(reqOpts...),
		model:     o.model,
		maxTokens: o.maxTokens,
	}
}

func NewOpenAIWithModel(apiKey, model string) *OpenAI {
	return NewOpenAI(apiKey, WithModel(model))
}

func (o *OpenAI) Name() string { return "OpenAI" }

// Model returns the model being used by this OpenAI client
func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Chat(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		default:
			return nil, fmt.Errorf("unsupported message role: %s", m.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if o.maxTokens > 0 {
		params.MaxTokens = openai.Int(o.maxTokens)
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, &ProviderError{Provider: o.Name(), Err: err}
	}
	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Provider: o.Name(), Err: ErrEmptyResponse}
	}

	resp := &Response{Choices: make([]Choice, 0, len(completion.Choices))}
	for _, c := range completion.Choices {
		resp.Choices = append(resp.Choices, Choice{Content: c.Message.Content})
	}
	return resp, nil
}
