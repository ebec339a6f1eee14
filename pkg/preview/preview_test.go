package preview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Flavor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FlavorGFM, New(Options{}).Flavor())
	assert.Equal(t, FlavorGFM, New(Options{Flavor: "markdown-it"}).Flavor())
	assert.Equal(t, FlavorCommonMark, New(Options{Flavor: FlavorCommonMark}).Flavor())
}

func TestRender_KeepsRawHTML(t *testing.T) {
	t.Parallel()

	source := "<div class=\"columns\">\n\nLeft\n\n</div>\n"
	got, err := New(Options{}).RenderString(context.Background(), source)
	require.NoError(t, err)

	assert.Contains(t, got, `<div class="columns">`)
	assert.Contains(t, got, "<p>Left</p>")
	assert.Contains(t, got, "</div>")
	assert.NotContains(t, got, "raw HTML omitted")
}

func TestRender_GFMTables(t *testing.T) {
	t.Parallel()

	source := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm, err := New(Options{Flavor: FlavorGFM}).RenderString(context.Background(), source)
	require.NoError(t, err)
	assert.Contains(t, gfm, "<table>")

	plain, err := New(Options{Flavor: FlavorCommonMark}).RenderString(context.Background(), source)
	require.NoError(t, err)
	assert.NotContains(t, plain, "<table>")
}

func TestRender_Standalone(t *testing.T) {
	t.Parallel()

	got, err := New(Options{Standalone: true, Title: "Q&A"}).RenderString(context.Background(), "# Hi\n")
	require.NoError(t, err)

	assert.Contains(t, got, "<!DOCTYPE html>")
	assert.Contains(t, got, `<meta charset="utf-8">`)
	assert.Contains(t, got, "<title>Q&amp;A</title>")
	assert.Contains(t, got, "<h1>Hi</h1>")
}

func TestRender_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).RenderString(ctx, "text")
	require.ErrorIs(t, err, context.Canceled)
}
