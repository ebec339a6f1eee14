package pretty

import "strings"

// FormatDiff colors a unified diff line by line.
func (s *Styles) FormatDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.SplitAfter(diff, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		text, terminated := strings.CutSuffix(line, "\n")

		switch {
		case strings.HasPrefix(text, "+++ "), strings.HasPrefix(text, "--- "):
			builder.WriteString(s.DiffHeader.Render(text))
		case strings.HasPrefix(text, "@@"):
			builder.WriteString(s.DiffHunk.Render(text))
		case strings.HasPrefix(text, "+"):
			builder.WriteString(s.DiffAdd.Render(text))
		case strings.HasPrefix(text, "-"):
			builder.WriteString(s.DiffRemove.Render(text))
		default:
			builder.WriteString(s.DiffContext.Render(text))
		}

		if terminated {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
