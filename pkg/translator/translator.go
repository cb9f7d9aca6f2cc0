// Package translator turns English or Japanese ticket text into Chinese.
package translator

import (
	"context"
	"strings"

	"github.com/helmcode/ticket-ai/pkg/config"
	"github.com/helmcode/ticket-ai/pkg/llm"
	"github.com/helmcode/ticket-ai/pkg/prompts"
)

type Translator struct {
	llm      llm.LLM
	settings config.Settings
}

func New(l llm.LLM, settings config.Settings) *Translator {
	return &Translator{llm: l, settings: settings}
}

// Translate returns the trimmed first answer of the model. Without a
// credential it fails with *config.ConfigurationError before any request;
// model client errors are returned as they are.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if err := t.settings.Validate(); err != nil {
		return "", err
	}

	resp, err := t.llm.Chat(ctx, &llm.Request{
		Model: t.settings.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompts.TranslateSystemPrompt},
			{Role: llm.RoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}

	out, err := resp.FirstText()
	if err != nil {
		return "", &llm.ProviderError{Provider: t.llm.Name(), Err: err}
	}
	return strings.TrimSpace(out), nil
}
