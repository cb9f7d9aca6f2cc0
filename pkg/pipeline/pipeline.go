// Package pipeline runs a ticket through detection, optional translation and
// analysis, and assembles the resulting document.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/helmcode/ticket-ai/pkg/formatter"
	"github.com/helmcode/ticket-ai/pkg/langdetect"
	"github.com/helmcode/ticket-ai/pkg/model"
)

// State is a step of a run.
type State int

const (
	StateDetecting State = iota
	StateTranslating
	StateSkipping
	StateAnalyzing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateDetecting:
		return "detecting"
	case StateTranslating:
		return "translating"
	case StateSkipping:
		return "skipping"
	case StateAnalyzing:
		return "analyzing"
	case StateDone:
		return "done"
	default:
		return "invalid"
	}
}

type Detector interface {
	Detect(text string) langdetect.Result
}

type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, chineseText string) (string, error)
}

// translateLanguages is the fixed trigger set. Other non-Chinese languages
// (ko, fr, ...) are passed to the analyzer untranslated.
var translateLanguages = map[string]bool{
	"en": true,
	"ja": true,
}

// ShouldTranslate reports whether a detection result triggers translation.
func ShouldTranslate(r langdetect.Result) bool {
	if r.IsUnknown() {
		return false
	}
	return translateLanguages[r.Tag()]
}

type Pipeline struct {
	detector   Detector
	translator Translator
	analyzer   Analyzer
	logger     *slog.Logger
	onState    func(State)
}

type Option func(*Pipeline)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithStateHook registers fn to be called on entering every state.
func WithStateHook(fn func(State)) Option {
	return func(p *Pipeline) { p.onState = fn }
}

func New(d Detector, t Translator, a Analyzer, opts ...Option) *Pipeline {
	p := &Pipeline{
		detector:   d,
		translator: t,
		analyzer:   a,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes one ticket. Errors from the translator or analyzer are
// returned unchanged and no report is produced.
func (p *Pipeline) Run(ctx context.Context, text string) (*model.Report, error) {
	p.enter(StateDetecting)
	detected := p.detector.Detect(text)
	lang := detected.Tag()
	p.logger.Debug("language detected", "language", lang, "chars", len([]rune(text)))

	chinese := text
	translated := false
	if ShouldTranslate(detected) {
		p.enter(StateTranslating)
		out, err := p.translator.Translate(ctx, text)
		if err != nil {
			return nil, err
		}
		chinese = out
		translated = true
		p.logger.Info("ticket translated", "language", lang, "chars", len([]rune(chinese)))
	} else {
		p.enter(StateSkipping)
		if !detected.IsUnknown() && lang != "zh" {
			p.logger.Warn("language is not translated, analyzing original text", "language", lang)
		}
	}

	p.enter(StateAnalyzing)
	analysis, err := p.analyzer.Analyze(ctx, chinese)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Original:   text,
		Language:   lang,
		Translated: translated,
		Chinese:    chinese,
		Analysis:   analysis,
		Document:   formatter.BuildOutput(text, lang, chinese, analysis),
	}
	p.enter(StateDone)
	return report, nil
}

func (p *Pipeline) enter(s State) {
	p.logger.Debug("pipeline state", "state", s.String())
	if p.onState != nil {
		p.onState(s)
	}
}
