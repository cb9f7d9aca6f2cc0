package formatter

import (
	"fmt"
	"strings"
)

const (
	translationHeader = "中文翻译"
	analysisHeader    = "分析结果"
)

// OriginalHeader returns the label of the original-text section.
func OriginalHeader(lang string) string {
	return fmt.Sprintf("原始内容（%s）", lang)
}

// BuildOutput assembles the Markdown document. Labels and their order are
// fixed; only the four content slots vary.
func BuildOutput(original, lang, chinese, analysis string) string {
	sections := []string{
		OriginalHeader(lang),
		original,
		"",
		translationHeader,
		chinese,
		"",
		analysisHeader,
		analysis,
	}
	return strings.Join(sections, "\n")
}
