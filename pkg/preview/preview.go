// Package preview renders filtered slide Markdown to HTML with goldmark.
// Raw HTML emitted by the rewrite stages is passed through unchanged.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Flavor identifies the Markdown flavor used for rendering.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Options configures a Renderer.
type Options struct {
	// Flavor is "gfm" (default) or "commonmark".
	Flavor string

	// Standalone wraps the fragment in a minimal HTML document.
	Standalone bool

	// Title is the document title used when Standalone is set.
	Title string
}

// Renderer converts Markdown to HTML.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a Renderer for the given options.
// Unknown flavors fall back to GFM.
func New(opts Options) *Renderer {
	if opts.Flavor != FlavorCommonMark {
		opts.Flavor = FlavorGFM
	}
	return &Renderer{
		opts: opts,
		md:   newGoldmarkInstance(opts.Flavor),
	}
}

// Flavor returns the configured Markdown flavor.
func (r *Renderer) Flavor() string {
	return r.opts.Flavor
}

// Render writes the HTML rendering of source to w.
func (r *Renderer) Render(ctx context.Context, source []byte, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(source, &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if !r.opts.Standalone {
		if _, err := w.Write(body.Bytes()); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintf(w, documentTemplate, html.EscapeString(r.opts.Title), body.String())
	if err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// RenderString is a convenience wrapper around Render.
func (r *Renderer) RenderString(ctx context.Context, source string) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, []byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// newGoldmarkInstance creates a goldmark.Markdown that keeps raw HTML.
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	}
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
