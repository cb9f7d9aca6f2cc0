package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/helmcode/ticket-ai/pkg/model"
)

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionModules
	sectionCauses
	sectionReplies
	sectionFormal
	sectionCasual
)

// Header titles without their emoji prefix, as requested by the analysis prompt.
var headings = []struct {
	title string
	sec   section
}{
	{"用户问题概括", sectionSummary},
	{"涉及模块", sectionModules},
	{"可能原因", sectionCauses},
	{"推荐英文回复语", sectionReplies},
	{"正式风格", sectionFormal},
	{"轻松风格", sectionCasual},
}

var (
	fenceRe      = regexp.MustCompile("```[a-zA-Z]*\n|```")
	listMarkerRe = regexp.MustCompile(`^(?:[-*•+]|\d+[.)、])\s*`)
)

// ParseSections splits an analysis into its sections for display. It never
// fails: text it cannot place is still available through Raw.
func ParseSections(raw string) *model.Sections {
	out := &model.Sections{Raw: raw}

	buckets := map[section][]string{}
	current := sectionNone
	for _, line := range strings.Split(stripFences(raw), "\n") {
		if sec, ok := matchHeading(line); ok {
			current = sec
			continue
		}
		if current == sectionNone {
			continue
		}
		buckets[current] = append(buckets[current], line)
	}

	out.Summary = joinBlock(buckets[sectionSummary])
	out.Modules = listItems(buckets[sectionModules])
	out.Causes = listItems(buckets[sectionCauses])
	out.FormalReply = joinBlock(buckets[sectionFormal])
	out.CasualReply = joinBlock(buckets[sectionCasual])
	out.Complete = out.Summary != "" && len(out.Modules) > 0 && len(out.Causes) > 0 &&
		out.FormalReply != "" && out.CasualReply != ""

	return out
}

// matchHeading accepts markdown decorations around a header, e.g.
// "## 🧠 用户问题概括" or "**正式风格：**".
func matchHeading(line string) (section, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#>*_ ")
	s = strings.TrimRight(s, "*_:： ")
	if s == "" {
		return sectionNone, false
	}
	for _, h := range headings {
		if !strings.HasSuffix(s, h.title) {
			continue
		}
		// room for an emoji, its variation selector and a space
		if utf8.RuneCountInString(s)-utf8.RuneCountInString(h.title) <= 3 {
			return h.sec, true
		}
	}
	return sectionNone, false
}

func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func listItems(lines []string) []string {
	var items []string
	for _, line := range lines {
		item := strings.TrimSpace(listMarkerRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// stripFences removes markdown code fences such as ```markdown ... ```
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
