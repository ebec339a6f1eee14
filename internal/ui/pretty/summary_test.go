package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/slidefilter/internal/ui/pretty"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	"github.com/yaklabco/slidefilter/pkg/runner"
)

func TestFormatRunSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		result *runner.Result
		want   string
	}{
		{
			name:   "nil result",
			result: nil,
			want:   "",
		},
		{
			name: "unchanged to stdout",
			result: &runner.Result{
				Input:        "deck.md",
				Output:       runner.StdioName,
				Pipeline:     &rewrite.Result{Input: "x", Output: "x"},
				BytesWritten: 1,
			},
			want: "deck.md -> <stdout>: unchanged [1 bytes]\n",
		},
		{
			name: "one stage",
			result: &runner.Result{
				Input:        "deck.md",
				Output:       "out.md",
				Pipeline:     &rewrite.Result{Stages: []rewrite.StageOutcome{{ID: "SF003", Changed: true}}},
				BytesWritten: 5,
			},
			want: "deck.md -> out.md: 1 stage changed the document (SF003) [5 bytes]\n",
		},
		{
			name: "several stages",
			result: &runner.Result{
				Input:  "<stdin>",
				Output: "out.md",
				Pipeline: &rewrite.Result{Stages: []rewrite.StageOutcome{
					{ID: "SF001", Changed: true},
					{ID: "SF002", Changed: false},
					{ID: "SF003", Changed: true},
				}},
				BytesWritten: 9,
			},
			want: "<stdin> -> out.md: 2 stages changed the document (SF001, SF003) [9 bytes]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatRunSummary(tt.result))
		})
	}
}
