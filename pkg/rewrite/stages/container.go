package stages

import (
	"regexp"
	"strings"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// optionBlankLine adds an empty line after generated block tags so the
// renderer keeps parsing Markdown inside them.
const optionBlankLine = "blank_line"

var (
	// {{{label, three or more braces.
	containerOpenPattern = regexp.MustCompile(`^\{{3,}[ \t]*([A-Za-z0-9_ -]+)$`)

	// }}} with optional trailing text, three or more braces.
	containerClosePattern = regexp.MustCompile(`^\}{3,}`)
)

// ContainerStage turns {{{label / }}} lines into <div class="label"> / </div>.
type ContainerStage struct {
	rewrite.BaseStage
}

// NewContainerStage creates a new container stage.
func NewContainerStage() *ContainerStage {
	return &ContainerStage{
		BaseStage: rewrite.NewBaseStage(
			"SF001",
			"container",
			"Replace {{{label and }}} lines with <div class=\"label\"> and </div>",
			true,
		),
	}
}

// DefaultOptions returns the container options.
func (s *ContainerStage) DefaultOptions() map[string]any {
	return map[string]any{optionBlankLine: false}
}

// Rewrite replaces every open and close line independently.
// Unbalanced braces produce unbalanced tags.
func (s *ContainerStage) Rewrite(sc *rewrite.StageContext, text string) (string, error) {
	pad := sc.OptionBool(optionBlankLine, false)

	return rewrite.MapLines(text, func(_ int, line string) (string, bool, error) {
		if m := containerOpenPattern.FindStringSubmatch(line); m != nil {
			label := strings.TrimSpace(m[1])
			if label == "" {
				return "", false, nil
			}
			return padTag(`<div class="`+label+`">`, pad), true, nil
		}
		if containerClosePattern.MatchString(line) {
			return padTag("</div>", pad), true, nil
		}
		return "", false, nil
	})
}

// padTag appends an empty line to tag when pad is set.
func padTag(tag string, pad bool) string {
	if pad {
		return tag + "\n"
	}
	return tag
}
