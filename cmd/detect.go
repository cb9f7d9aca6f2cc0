package cmd

import (
	"fmt"
	"strings"

	"github.com/helmcode/ticket-ai/pkg/langdetect"
	"github.com/helmcode/ticket-ai/pkg/pipeline"
	"github.com/spf13/cobra"
)

var (
	detectInput   string
	detectVerbose bool
)

func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [TEXT]",
		Short: "Detect the language of a ticket without calling the model",
		Long: `Print the language tag the analyze command would use, and whether the ticket
would be translated before analysis.

Examples:
  ticket-ai detect --input ticket.txt
  ticket-ai detect "Server returns 500 on login"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDetect,
	}

	cmd.Flags().StringVarP(&detectInput, "input", "i", "", "Input ticket file path")
	cmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Also print whether the ticket would be translated")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	var text string
	switch {
	case len(args) == 1 && detectInput != "":
		return fmt.Errorf("use either TEXT or --input, not both")
	case len(args) == 1:
		text = strings.TrimSpace(args[0])
		if text == "" {
			return errEmptyTicket
		}
	case detectInput != "":
		t, err := readTicket(detectInput)
		if err != nil {
			return err
		}
		text = t
	default:
		return fmt.Errorf("provide the ticket as TEXT or with --input")
	}

	result := langdetect.New().Detect(text)
	out := cmd.OutOrStdout()
	if !detectVerbose {
		fmt.Fprintln(out, result.Tag())
		return nil
	}

	action := "analyzed as is"
	if pipeline.ShouldTranslate(result) {
		action = "translated to Chinese"
	}
	fmt.Fprintf(out, "%s (%s)\n", result.Tag(), action)
	return nil
}
