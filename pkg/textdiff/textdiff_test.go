package textdiff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Identical(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Compute("a", "b", "same\n", "same\n"))
	assert.Empty(t, Unified("a", "b", "same\n", "same\n"))
	assert.Empty(t, Unified("a", "b", "", ""))
	assert.False(t, Compute("a", "b", "x", "x").HasChanges())
}

func TestUnified_SingleChange(t *testing.T) {
	t.Parallel()

	got := Unified("deck.md", "deck.md (filtered)", "a\nb\nc\n", "a\nB\nc\n")
	want := "--- deck.md\n" +
		"+++ deck.md (filtered)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+B\n" +
		" c\n"
	assert.Equal(t, want, got)
}

func TestCompute_Counts(t *testing.T) {
	t.Parallel()

	diff := Compute("old", "new", "{{{ columns\nLeft\n}}}\n", "<div class=\"columns\">\nLeft\n</div>\n")
	require.NotNil(t, diff)
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 2, diff.Deletions)
	require.Len(t, diff.Hunks, 1)
	assert.Equal(t, 3, diff.Hunks[0].OldCount)
	assert.Equal(t, 3, diff.Hunks[0].NewCount)
}

func TestUnified_MissingTrailingNewline(t *testing.T) {
	t.Parallel()

	got := Unified("old", "new", "a", "a\n")
	want := "--- old\n" +
		"+++ new\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-a\n" +
		`\ No newline at end of file` + "\n" +
		"+a\n"
	assert.Equal(t, want, got)
}

func TestUnified_FromEmpty(t *testing.T) {
	t.Parallel()

	got := Unified("old", "new", "", "x\ny\n")
	assert.Equal(t, "--- old\n+++ new\n@@ -0,0 +1,2 @@\n+x\n+y\n", got)
}

func TestCompute_SeparateHunks(t *testing.T) {
	t.Parallel()

	var oldLines, newLines []string
	for i := 1; i <= 20; i++ {
		line := fmt.Sprintf("l%d\n", i)
		oldLines = append(oldLines, line)
		if i == 2 || i == 18 {
			line = fmt.Sprintf("X%d\n", i)
		}
		newLines = append(newLines, line)
	}

	diff := Compute("old", "new", strings.Join(oldLines, ""), strings.Join(newLines, ""))
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 2)

	assert.Equal(t, Hunk{OldStart: 1, OldCount: 5, NewStart: 1, NewCount: 5}, withoutLines(diff.Hunks[0]))
	assert.Equal(t, Hunk{OldStart: 15, OldCount: 6, NewStart: 15, NewCount: 6}, withoutLines(diff.Hunks[1]))
	assert.Contains(t, diff.String(), "@@ -15,6 +15,6 @@\n")
}

func TestCompute_NearbyChangesMerge(t *testing.T) {
	t.Parallel()

	oldText := "a\nb\nc\nd\ne\nf\n"
	newText := "A\nb\nc\nd\ne\nF\n"

	diff := Compute("old", "new", oldText, newText)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 1)
	assert.Equal(t, 6, diff.Hunks[0].OldCount)
}

func withoutLines(h Hunk) Hunk {
	h.Lines = nil
	return h
}
