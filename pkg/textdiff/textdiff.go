// Package textdiff renders unified diffs between two versions of a document.
// It is used by the --diff mode to show what the filter would change.
package textdiff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// noNewline marks a final line that lacks a line terminator.
const noNewline = `\ No newline at end of file`

// Kind indicates whether a diff line is kept, added, or removed.
type Kind int

const (
	// Context is an unchanged line.
	Context Kind = iota

	// Add is a line present only in the new text.
	Add

	// Remove is a line present only in the old text.
	Remove
)

// Line is a single line of a hunk. Text keeps its line terminator, if any.
type Line struct {
	Kind Kind
	Text string
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	// OldStart and NewStart are 1-based line numbers.
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Diff is the unified diff between two texts.
type Diff struct {
	OldName   string
	NewName   string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute diffs oldText against newText line by line.
// Returns nil when the texts are identical.
func Compute(oldName, newName, oldText, newText string) *Diff {
	if oldText == newText {
		return nil
	}

	ops := diffLines(splitLines(oldText), splitLines(newText))
	diff := &Diff{
		OldName: oldName,
		NewName: newName,
		Hunks:   groupHunks(ops),
	}
	for _, op := range ops {
		switch op.Kind {
		case Add:
			diff.Additions++
		case Remove:
			diff.Deletions++
		}
	}
	return diff
}

// Unified is shorthand for Compute(...).String().
func Unified(oldName, newName, oldText, newText string) string {
	return Compute(oldName, newName, oldText, newText).String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified format, or "" for a nil diff.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- %s\n", d.OldName)
	fmt.Fprintf(&builder, "+++ %s\n", d.NewName)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%s +%s @@\n",
			hunkRange(hunk.OldStart, hunk.OldCount),
			hunkRange(hunk.NewStart, hunk.NewCount))

		for _, line := range hunk.Lines {
			switch line.Kind {
			case Context:
				builder.WriteByte(' ')
			case Add:
				builder.WriteByte('+')
			case Remove:
				builder.WriteByte('-')
			}

			text, terminated := strings.CutSuffix(line.Text, "\n")
			builder.WriteString(text)
			builder.WriteByte('\n')
			if !terminated {
				builder.WriteString(noNewline)
				builder.WriteByte('\n')
			}
		}
	}

	return builder.String()
}

// hunkRange formats a hunk side; an empty side points at the line before it.
func hunkRange(start, count int) string {
	if count == 0 {
		start--
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// splitLines splits text after each "\n", keeping the terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffLines walks a longest-common-subsequence table to produce the
// edit script. Removals are emitted before additions at each change.
func diffLines(oldLines, newLines []string) []Line {
	rows, cols := len(oldLines), len(newLines)

	// lcs[i][j] is the LCS length of oldLines[i:] and newLines[j:].
	lcs := make([][]int, rows+1)
	for i := range lcs {
		lcs[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, max(rows, cols))
	i, j := 0, 0
	for i < rows || j < cols {
		switch {
		case i < rows && j < cols && oldLines[i] == newLines[j]:
			ops = append(ops, Line{Kind: Context, Text: oldLines[i]})
			i++
			j++
		case j == cols || (i < rows && lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, Line{Kind: Remove, Text: oldLines[i]})
			i++
		default:
			ops = append(ops, Line{Kind: Add, Text: newLines[j]})
			j++
		}
	}
	return ops
}

// groupHunks slices the edit script into hunks, merging changes whose
// separating context would overlap.
func groupHunks(ops []Line) []Hunk {
	var changes []int
	for idx, op := range ops {
		if op.Kind != Context {
			changes = append(changes, idx)
		}
	}

	var hunks []Hunk
	for k := 0; k < len(changes); {
		first, last := changes[k], changes[k]
		k++
		for k < len(changes) && changes[k]-last-1 <= 2*contextLines {
			last = changes[k]
			k++
		}

		start := max(0, first-contextLines)
		end := min(len(ops), last+1+contextLines)

		hunk := Hunk{OldStart: 1, NewStart: 1}
		for _, op := range ops[:start] {
			if op.Kind != Add {
				hunk.OldStart++
			}
			if op.Kind != Remove {
				hunk.NewStart++
			}
		}
		for _, op := range ops[start:end] {
			if op.Kind != Add {
				hunk.OldCount++
			}
			if op.Kind != Remove {
				hunk.NewCount++
			}
		}
		hunk.Lines = append([]Line(nil), ops[start:end]...)
		hunks = append(hunks, hunk)
	}
	return hunks
}
