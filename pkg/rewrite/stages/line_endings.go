package stages

import (
	"regexp"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// LineEndingsStage converts \r\n and lone \r to \n.
// It is off by default because it touches lines no other stage matches.
type LineEndingsStage struct {
	rewrite.BaseStage
}

// NewLineEndingsStage creates a new line-endings stage.
func NewLineEndingsStage() *LineEndingsStage {
	return &LineEndingsStage{
		BaseStage: rewrite.NewBaseStage(
			"SF000",
			"line-endings",
			"Normalize CRLF and CR line endings to LF before other stages",
			false,
		),
	}
}

// Rewrite normalizes line endings.
func (s *LineEndingsStage) Rewrite(_ *rewrite.StageContext, text string) (string, error) {
	return crlfOrCR.ReplaceAllString(text, "\n"), nil
}
