package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/ticket-ai/pkg/model"
	"github.com/helmcode/ticket-ai/pkg/parser"
	"gopkg.in/yaml.v3"
)

type reportView struct {
	model.Report `yaml:",inline"`
	Sections     *model.Sections `json:"sections" yaml:"sections"`
}

// DisplayResults formats and displays the run results
func DisplayResults(w io.Writer, report *model.Report, format string) error {
	sections := parser.ParseSections(report.Analysis)

	switch format {
	case "json":
		return displayJSON(w, reportView{Report: *report, Sections: sections})
	case "yaml":
		return displayYAML(w, reportView{Report: *report, Sections: sections})
	case "human":
		fallthrough
	default:
		displayHuman(w, report, sections)
	}
	return nil
}

// Display writes v as json or yaml; any other format falls back to yaml.
func Display(w io.Writer, v any, format string) error {
	if format == "json" {
		return displayJSON(w, v)
	}
	return displayYAML(w, v)
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, report *model.Report, sections *model.Sections) {
	// Colors
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)

	// Language
	translation := "no translation needed"
	if report.Translated {
		translation = "translated to Chinese"
	}
	cyan.Fprintf(w, "🌐 LANGUAGE: %s ", report.Language)
	fmt.Fprintf(w, "(%s)\n\n", translation)

	if !sections.Complete {
		yellow.Fprintln(w, "⚠️  The analysis does not follow the expected layout; showing it as returned.")
		fmt.Fprintln(w)
		white.Fprintln(w, "📄 ANALYSIS:")
		fmt.Fprintln(w, indent(report.Analysis, "   "))
		fmt.Fprintln(w)
		footer(w)
		return
	}

	white.Fprintln(w, "🧠 SUMMARY:")
	fmt.Fprintf(w, "   %s\n\n", sections.Summary)

	yellow.Fprintln(w, "⚙️  AFFECTED MODULES:")
	for i, m := range sections.Modules {
		fmt.Fprintf(w, "   %d. %s\n", i+1, m)
	}
	fmt.Fprintln(w)

	red.Fprintln(w, "🔍 PROBABLE CAUSES:")
	for i, c := range sections.Causes {
		fmt.Fprintf(w, "   %d. %s\n", i+1, c)
	}
	fmt.Fprintln(w)

	green.Fprintln(w, "✉️  FORMAL REPLY:")
	fmt.Fprintln(w, wrapText(sections.FormalReply, 80, "   "))
	fmt.Fprintln(w)

	green.Fprintln(w, "✉️  CASUAL REPLY:")
	fmt.Fprintln(w, wrapText(sections.CasualReply, 80, "   "))
	fmt.Fprintln(w)

	footer(w)
}

func footer(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -f json or -f yaml for machine-readable output"))
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
