package stages

import (
	"regexp"
	"strings"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

var (
	// > [!KIND] optional title
	calloutHeadPattern = regexp.MustCompile(`^>\s*\[!([^\]]+)\][ \t]*(.*)$`)
)

// callout is one matched callout block.
type callout struct {
	raw      string   // category as written, trimmed
	category string   // upper-cased category used for the glyph lookup
	title    string   // trimmed, may be empty
	body     []string // continuation lines without the leading '>'
}

// CalloutStage turns "> [!KIND] title" blocks into callout boxes.
type CalloutStage struct {
	rewrite.BaseStage
}

// NewCalloutStage creates a new callout stage.
func NewCalloutStage() *CalloutStage {
	return &CalloutStage{
		BaseStage: rewrite.NewBaseStage(
			"SF002",
			"callout",
			"Render > [!KIND] title blockquotes as callout boxes with an icon",
			true,
		),
	}
}

// Rewrite scans for callout heads and consumes every directly following
// quote-marked line as body. The first line not starting with '>' ends it.
func (s *CalloutStage) Rewrite(_ *rewrite.StageContext, text string) (string, error) {
	lines := rewrite.SplitLines(text)
	out := make([]rewrite.Line, 0, len(lines))

	for i := 0; i < len(lines); {
		m := calloutHeadPattern.FindStringSubmatch(lines[i].Text)
		if m == nil {
			out = append(out, lines[i])
			i++
			continue
		}

		c := callout{
			raw:      strings.TrimSpace(m[1]),
			category: normalizeCategory(m[1]),
			title:    strings.TrimSpace(m[2]),
		}

		eol := lines[i].EOL
		next := i + 1
		for next < len(lines) && strings.HasPrefix(lines[next].Text, ">") {
			c.body = append(c.body, strings.TrimSpace(lines[next].Text[1:]))
			eol = lines[next].EOL
			next++
		}

		out = append(out, rewrite.Line{Text: c.render(), EOL: eol})
		i = next
	}

	return rewrite.JoinLines(out), nil
}

// render builds the callout box, preceded by an empty line so the renderer
// treats it as an HTML block. The last line carries no terminator.
func (c *callout) render() string {
	paragraphs := make([]string, len(c.body))
	for i, line := range c.body {
		paragraphs[i] = "<p>" + line + "</p>"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(`<div class="callout" data-callout="` + c.raw + `">` + "\n")
	b.WriteString(`  <div class="callout-title">` + "\n")
	b.WriteString(`    <div class="callout-title-icon">` + Glyph(c.category) + `</div>&nbsp;` + "\n")
	b.WriteString(`    <div class="callout-title-inner">` + c.title + `</div>` + "\n")
	b.WriteString(`  </div>` + "\n")
	b.WriteString(`  <div class="callout-content">` + strings.Join(paragraphs, "\n") + `</div>` + "\n")
	b.WriteString(`</div>`)
	return b.String()
}
