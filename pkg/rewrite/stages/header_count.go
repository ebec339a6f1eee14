package stages

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// ErrRecallWithoutAssignment is returned when a header line recalls the
// latest number before any #num# header assigned one.
var ErrRecallWithoutAssignment = errors.New("header recall before any #num# assignment")

// <!-- header: 'marker#cond#title<post' -->
//
// Groups: pre, marker, condition, title, post, end.
var headerCountPattern = regexp.MustCompile(`^<!-- (header:.*')(.*?)(#.*#)(.*?)(<[^']*)*('.*)*$`)

// HeaderCountStage numbers Marp header directives.
//
// A #num# condition reuses the current number only when the same
// marker+title was the one just assigned; otherwise it assigns the next
// number, so a header returning after a different one is numbered anew.
// Any other #...# condition recalls the text of the highest number assigned
// so far, discarding the line's own title. That recall is positional: it
// assumes each recalling header follows the assigning header it belongs to.
type HeaderCountStage struct {
	rewrite.BaseStage
}

// NewHeaderCountStage creates a new header-count stage.
func NewHeaderCountStage() *HeaderCountStage {
	return &HeaderCountStage{
		BaseStage: rewrite.NewBaseStage(
			"SF005",
			"header-count",
			"Number <!-- header: '...#num#...' --> directives and repeat the latest number on #cont# lines",
			false,
		),
	}
}

// Rewrite numbers header directives in document order.
func (s *HeaderCountStage) Rewrite(_ *rewrite.StageContext, text string) (string, error) {
	headers := newCounter()

	return rewrite.MapLines(text, func(lineNum int, line string) (string, bool, error) {
		m := headerCountPattern.FindStringSubmatch(line)
		if m == nil {
			return "", false, nil
		}

		pre, marker, cond, title, post, end := m[1], m[2], m[3], m[4], m[5], m[6]

		var label string
		if cond == numberToken {
			label = marker + strconv.Itoa(headers.Len()) + title
			if !headers.has(label) {
				label = marker + strconv.Itoa(headers.Len()+1) + title
				headers.record(label)
			}
		} else {
			latest, ok := headers.latest()
			if !ok {
				return "", false, fmt.Errorf("line %d: %w", lineNum, ErrRecallWithoutAssignment)
			}
			label = latest
		}

		return "<!-- " + pre + "<div>" + label + "</div>" + post + end, true, nil
	})
}
