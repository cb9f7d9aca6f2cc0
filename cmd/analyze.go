package cmd

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/helmcode/ticket-ai/pkg/analyzer"
	"github.com/helmcode/ticket-ai/pkg/config"
	"github.com/helmcode/ticket-ai/pkg/formatter"
	"github.com/helmcode/ticket-ai/pkg/langdetect"
	"github.com/helmcode/ticket-ai/pkg/llm"
	"github.com/helmcode/ticket-ai/pkg/pipeline"
	"github.com/helmcode/ticket-ai/pkg/translator"
	"github.com/spf13/cobra"
)

var (
	analyzeInput      string
	analyzeOutput     string
	analyzeProvider   string
	analyzeModel      string
	analyzeConfigFile string
	analyzeFormat     string
	analyzeVerbose    bool
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze --input TICKET --output REPORT",
		Short: "Translate and analyze a support ticket with AI assistance",
		Long: `Detect the language of a support ticket, translate English or Japanese tickets
into Chinese, and ask the model for a structured analysis. The original text,
the translation and the analysis are written to a single Markdown report.

Examples:
  # Analyze a ticket with the default provider (OpenAI)
  ticket-ai analyze --input ticket.txt --output report.md

  # Use Claude with a specific model
  ticket-ai analyze --input ticket.txt --output report.md --provider claude --model claude-3-5-haiku-latest

  # Print the result as JSON as well
  ticket-ai analyze --input ticket.txt --output report.md -f json`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input ticket file path")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output markdown file path")
	cmd.Flags().StringVar(&analyzeProvider, "provider", "", "LLM provider (openai, claude). Defaults to LLM_PROVIDER or openai")
	cmd.Flags().StringVar(&analyzeModel, "model", "", "LLM model to use (overrides OPENAI_MODEL / CLAUDE_MODEL)")
	cmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Config file (default .ticket-ai.yaml in . or $HOME)")
	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", "human", "Terminal output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Verbose output")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	switch analyzeFormat {
	case "human", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (supported: human, json, yaml)", analyzeFormat)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: analyzeConfigFile,
		Provider:   analyzeProvider,
		Model:      analyzeModel,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	settings := cfg.Settings()

	text, err := readTicket(analyzeInput)
	if err != nil {
		return err
	}

	llmClient, err := llm.New(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	if analyzeFormat == "human" {
		printHeader(errOut, analyzeInput, llmClient)
	}

	s := newSpinner()
	p := pipeline.New(
		langdetect.New(),
		translator.New(llmClient, settings),
		analyzer.New(llmClient, settings),
		pipeline.WithLogger(newLogger(errOut, analyzeVerbose)),
		pipeline.WithStateHook(progress(s, errOut)),
	)

	report, err := p.Run(cmd.Context(), text)
	stopSpinner(s)
	if err != nil {
		return fmt.Errorf("ticket analysis failed: %w", err)
	}

	if err := writeDocument(analyzeOutput, report.Document); err != nil {
		return err
	}
	printSuccess(errOut, fmt.Sprintf("Report written to %s", analyzeOutput))

	return formatter.DisplayResults(out, report, analyzeFormat)
}

// progress drives the spinner from pipeline state changes.
func progress(s *spinner.Spinner, w io.Writer) func(pipeline.State) {
	prev := pipeline.StateDetecting
	return func(state pipeline.State) {
		stopSpinner(s)

		switch prev {
		case pipeline.StateTranslating:
			printSuccess(w, "Translated to Chinese")
		case pipeline.StateAnalyzing:
			printSuccess(w, "Analysis complete")
		}
		prev = state

		switch state {
		case pipeline.StateDetecting:
			startSpinner(s, " Detecting language...")
		case pipeline.StateTranslating:
			startSpinner(s, " Translating to Chinese...")
		case pipeline.StateSkipping:
			printSuccess(w, "No translation needed")
		case pipeline.StateAnalyzing:
			startSpinner(s, " Analyzing with AI...")
		}
	}
}

func printHeader(w io.Writer, input string, client llm.LLM) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, "🎫 Support Ticket Assistant")
	fmt.Fprintf(w, "📝 Ticket: %s\n", input)
	fmt.Fprintf(w, "🤖 Provider: %s (%s)\n", client.Name(), client.Model())
	fmt.Fprintln(w)
}
