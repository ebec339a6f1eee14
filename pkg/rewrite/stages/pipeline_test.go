package stages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

const deck = `<!-- header: 'Chapter #num# Intro' -->

## Ch.#num# Intro

{{{columns
Left
}}}

> [!NOTE] Remember
> Speak slowly.

***

<!-- header: 'Chapter #cont# ignored' -->

## Ch.#num# Intro
`

func newBuiltinPipeline(t *testing.T, cfg *config.Config) *rewrite.Pipeline {
	t.Helper()

	registry := rewrite.NewRegistry()
	RegisterAll(registry)

	pipeline, err := rewrite.NewPipeline(registry, cfg)
	require.NoError(t, err)
	return pipeline
}

func TestPipeline_DefaultStages(t *testing.T) {
	t.Parallel()

	result, err := newBuiltinPipeline(t, nil).Run(context.Background(), deck)
	require.NoError(t, err)

	want := "<!-- header: 'Chapter #num# Intro' -->\n" +
		"\n" +
		"## Ch.#num# Intro\n" +
		"\n" +
		"<div class=\"columns\">\n" +
		"Left\n" +
		"</div>\n" +
		"\n" +
		box("NOTE", Glyph("NOTE"), "Remember", "<p>Speak slowly.</p>") + "\n" +
		"\n" +
		"<hr>\n" +
		"\n" +
		"<!-- header: 'Chapter #cont# ignored' -->\n" +
		"\n" +
		"## Ch.#num# Intro\n"

	assert.Equal(t, want, result.Output)

	names := make([]string, 0, len(result.Stages))
	for _, s := range result.Stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"container", "callout", "horizontal-rule"}, names)
}

func TestPipeline_AllStages(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{EnableStages: []string{"line-endings", "heading-count", "SF005"}}
	input := strings.ReplaceAll(deck, "\n", "\r\n")

	result, err := newBuiltinPipeline(t, cfg).Run(context.Background(), input)
	require.NoError(t, err)

	out := result.Output
	assert.NotContains(t, out, "\r")
	assert.Equal(t, 2, strings.Count(out, "## Ch.1 Intro\n"))
	assert.Equal(t, 2, strings.Count(out, "<!-- header: '<div>Chapter 1 Intro</div>' -->\n"))
	assert.Contains(t, out, "<hr>\n")
	assert.Contains(t, out, `data-callout="NOTE"`)
}

func TestPipeline_RecallFailureIsStageError(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{EnableStages: []string{"header-count"}}
	_, err := newBuiltinPipeline(t, cfg).Run(context.Background(), "<!-- header: 'x #back# y' -->\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecallWithoutAssignment)

	var stageErr *rewrite.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "SF005", stageErr.ID)
}

func TestPipeline_OutputRendersAsHTMLBlocks(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Stages: map[string]config.StageConfig{
		"container": {Options: map[string]any{optionBlankLine: true}},
	}}

	result, err := newBuiltinPipeline(t, cfg).Run(context.Background(), deck)
	require.NoError(t, err)

	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(result.Output), &buf))

	rendered := buf.String()
	assert.Contains(t, rendered, `<div class="callout" data-callout="NOTE">`)
	assert.Contains(t, rendered, `<div class="columns">`)
	// With the blank line the container body is parsed as Markdown.
	assert.Contains(t, rendered, "<p>Left</p>")
	assert.Contains(t, rendered, "<hr>")
}
