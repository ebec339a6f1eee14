package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalRuleStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		options map[string]any
	}{
		{name: "three asterisks", input: "***\n", want: "<hr>\n"},
		{name: "many asterisks", input: "a\n*******\nb\n", want: "a\n<hr>\nb\n"},
		{name: "two asterisks", input: "**\n", want: "**\n"},
		{name: "trailing space", input: "*** \n", want: "*** \n"},
		{name: "leading space", input: " ***\n", want: " ***\n"},
		{name: "dashes untouched", input: "---\n", want: "---\n"},
		{name: "bold text untouched", input: "***bold***\n", want: "***bold***\n"},
		{name: "no final newline", input: "***", want: "<hr>"},
		{
			name:    "blank line option",
			input:   "***\n",
			want:    "<hr>\n\n",
			options: map[string]any{optionBlankLine: true},
		},
		{
			name:    "non-bool option falls back",
			input:   "***\n",
			want:    "<hr>\n",
			options: map[string]any{optionBlankLine: "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, run(t, NewHorizontalRuleStage(), tt.input, tt.options))
		})
	}
}

func TestHorizontalRuleStage_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"***\n",
		"a\n***\n****\nb",
		"{{{x\n***\n}}}\n",
	}

	stage := NewHorizontalRuleStage()
	for _, input := range inputs {
		once := run(t, stage, input, nil)
		twice := run(t, stage, once, nil)
		assert.Equal(t, once, twice, input)
	}
}
