package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// StageInfo contains stage metadata for template generation.
// Callers build it from the stage registry so this package stays free of it.
type StageInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Options     map[string]any
}

// GenerateTemplate creates a commented .slidefilter.yml listing every stage.
func GenerateTemplate(stages []StageInfo) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`
#
# Stages run in ascending ID order. Keys may be stage IDs or names.

stages:
`)

	sorted := make([]StageInfo, len(stages))
	copy(sorted, stages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, stage := range sorted {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", stage.ID, stage.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(stage.Description, commentWrapWidth))
		fmt.Fprintf(&buf, "  %s:\n", stage.Name)
		fmt.Fprintf(&buf, "    enabled: %t\n", stage.Enabled)

		if len(stage.Options) == 0 {
			continue
		}

		keys := make([]string, 0, len(stage.Options))
		for k := range stage.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteString("    options:\n")
		for _, k := range keys {
			fmt.Fprintf(&buf, "      %s: %v\n", k, stage.Options[k])
		}
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# slidefilter configuration
# See: https://github.com/yaklabco/slidefilter`
}
