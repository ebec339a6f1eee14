package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/slidefilter/pkg/runner"
)

// FormatRunSummary formats a filter run as a single line.
// Example: "deck.md -> slides.md: 3 stages changed the document (2048 bytes)".
func (s *Styles) FormatRunSummary(result *runner.Result) string {
	if result == nil || result.Pipeline == nil {
		return ""
	}

	target := result.Output
	if target == runner.StdioName {
		target = "<stdout>"
	}
	route := s.Bold.Render(result.Input) + " -> " + s.Bold.Render(target)

	changed := result.StagesChanged()
	var status string
	switch len(changed) {
	case 0:
		status = s.Dim.Render("unchanged")
	case 1:
		status = s.Success.Render("1 stage changed the document") + s.Dim.Render(" ("+changed[0]+")")
	default:
		status = s.Success.Render(fmt.Sprintf("%d stages changed the document", len(changed))) +
			s.Dim.Render(" ("+strings.Join(changed, ", ")+")")
	}

	return fmt.Sprintf("%s: %s %s\n", route, status, s.Dim.Render(fmt.Sprintf("[%d bytes]", result.BytesWritten)))
}
