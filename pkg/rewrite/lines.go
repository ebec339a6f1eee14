package rewrite

import "strings"

// Line is one source line split from its terminator.
type Line struct {
	// Text is the line content without the terminator.
	Text string

	// EOL is "\n", or empty for a final unterminated line.
	EOL string
}

// SplitLines splits text into lines, keeping each terminator with its line.
// An empty text yields no lines. JoinLines(SplitLines(s)) == s for every s.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}

	lines := make([]Line, 0, strings.Count(text, "\n")+1)
	for text != "" {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, Line{Text: text})
			break
		}
		lines = append(lines, Line{Text: text[:idx], EOL: "\n"})
		text = text[idx+1:]
	}

	return lines
}

// JoinLines concatenates lines with their terminators.
func JoinLines(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Text)
		b.WriteString(line.EOL)
	}
	return b.String()
}

// MapLines rewrites text one line at a time. fn receives the 1-based line
// number and the line content; it returns the replacement content and whether
// the line matched. Unmatched lines are kept byte-identical.
func MapLines(text string, fn func(lineNum int, line string) (string, bool, error)) (string, error) {
	lines := SplitLines(text)
	for i, line := range lines {
		replaced, ok, err := fn(i+1, line.Text)
		if err != nil {
			return "", err
		}
		if ok {
			lines[i].Text = replaced
		}
	}
	return JoinLines(lines), nil
}
