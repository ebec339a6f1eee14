package stages

import (
	"regexp"
	"strconv"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// numberToken marks where a counting stage inserts the assigned index.
const numberToken = "#num#"

// "## marker#num#title"; the marker is greedy so the last token splits.
var headingCountPattern = regexp.MustCompile(`^##[ \t]+(.*)` + numberToken + `(.*)$`)

// HeadingCountStage numbers level-2 headings carrying the #num# token.
type HeadingCountStage struct {
	rewrite.BaseStage
}

// NewHeadingCountStage creates a new heading-count stage.
func NewHeadingCountStage() *HeadingCountStage {
	return &HeadingCountStage{
		BaseStage: rewrite.NewBaseStage(
			"SF004",
			"heading-count",
			"Replace #num# in level-2 headings with a per-title sequence number",
			false,
		),
	}
}

// Rewrite numbers headings by title: the first distinct title gets 1, the
// next 2, and a repeated title reuses its number.
func (s *HeadingCountStage) Rewrite(_ *rewrite.StageContext, text string) (string, error) {
	titles := newCounter()

	return rewrite.MapLines(text, func(_ int, line string) (string, bool, error) {
		m := headingCountPattern.FindStringSubmatch(line)
		if m == nil {
			return "", false, nil
		}

		marker, title := m[1], m[2]
		index, _ := titles.assign(title, strconv.Itoa)
		return "## " + marker + strconv.Itoa(index) + title, true, nil
	})
}
