package stages

import (
	"regexp"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// A line of three or more asterisks and nothing else.
var hrulePattern = regexp.MustCompile(`^\*{3,}$`)

// HorizontalRuleStage turns *** lines into <hr>.
type HorizontalRuleStage struct {
	rewrite.BaseStage
}

// NewHorizontalRuleStage creates a new horizontal-rule stage.
func NewHorizontalRuleStage() *HorizontalRuleStage {
	return &HorizontalRuleStage{
		BaseStage: rewrite.NewBaseStage(
			"SF003",
			"horizontal-rule",
			"Replace lines of three or more asterisks with <hr>",
			true,
		),
	}
}

// DefaultOptions returns the horizontal-rule options.
func (s *HorizontalRuleStage) DefaultOptions() map[string]any {
	return map[string]any{optionBlankLine: false}
}

// Rewrite replaces rule lines. Running it twice is the same as running it once.
func (s *HorizontalRuleStage) Rewrite(sc *rewrite.StageContext, text string) (string, error) {
	pad := sc.OptionBool(optionBlankLine, false)

	return rewrite.MapLines(text, func(_ int, line string) (string, bool, error) {
		if !hrulePattern.MatchString(line) {
			return "", false, nil
		}
		return padTag("<hr>", pad), true, nil
	})
}
