package analyzer

import (
	"context"
	"strings"

	"github.com/helmcode/ticket-ai/pkg/config"
	"github.com/helmcode/ticket-ai/pkg/llm"
	"github.com/helmcode/ticket-ai/pkg/prompts"
)

type Analyzer struct {
	llm      llm.LLM
	settings config.Settings
}

func New(l llm.LLM, settings config.Settings) *Analyzer {
	return &Analyzer{llm: l, settings: settings}
}

// Analyze asks the model for the five-section write-up of a Chinese ticket.
// The answer is returned trimmed but otherwise verbatim; whether the model
// followed the requested layout is not checked.
func (a *Analyzer) Analyze(ctx context.Context, chineseText string) (string, error) {
	if err := a.settings.Validate(); err != nil {
		return "", err
	}

	resp, err := a.llm.Chat(ctx, &llm.Request{
		Model: a.settings.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompts.AnalyzeSystemPrompt},
			{Role: llm.RoleUser, Content: prompts.BuildAnalysisPrompt(chineseText)},
		},
	})
	if err != nil {
		return "", err
	}

	out, err := resp.FirstText()
	if err != nil {
		return "", &llm.ProviderError{Provider: a.llm.Name(), Err: err}
	}
	return strings.TrimSpace(out), nil
}
