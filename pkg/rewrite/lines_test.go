package rewrite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []rewrite.Line
	}{
		{name: "empty", input: "", want: nil},
		{name: "single unterminated", input: "a", want: []rewrite.Line{{Text: "a"}}},
		{name: "single terminated", input: "a\n", want: []rewrite.Line{{Text: "a", EOL: "\n"}}},
		{
			name:  "blank lines",
			input: "\n\nb",
			want:  []rewrite.Line{{EOL: "\n"}, {EOL: "\n"}, {Text: "b"}},
		},
		{
			name:  "carriage return stays in text",
			input: "a\r\nb\n",
			want:  []rewrite.Line{{Text: "a\r", EOL: "\n"}, {Text: "b", EOL: "\n"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewrite.SplitLines(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, rewrite.JoinLines(got))
		})
	}
}

func TestMapLines(t *testing.T) {
	t.Parallel()

	t.Run("replaces matched lines only", func(t *testing.T) {
		t.Parallel()

		var seen []int
		out, err := rewrite.MapLines("keep\nswap\nkeep", func(n int, line string) (string, bool, error) {
			seen = append(seen, n)
			if line == "swap" {
				return "swapped", true, nil
			}
			return "ignored", false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "keep\nswapped\nkeep", out)
		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("stops on error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		_, err := rewrite.MapLines("a\nb\n", func(int, string) (string, bool, error) {
			return "", false, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}
