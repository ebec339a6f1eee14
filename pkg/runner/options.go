// Package runner reads a slide document, filters it through the rewrite
// pipeline and writes the result.
package runner

import (
	"context"
	"io"
)

// StdioName is the path that selects standard input or standard output.
const StdioName = "-"

// RenderFunc converts the filtered document into its final output form.
type RenderFunc func(ctx context.Context, filtered []byte, w io.Writer) error

// Options controls a single filter run.
type Options struct {
	// Input is the path to read. Empty or "-" reads Stdin.
	Input string

	// Output is the path to write. Empty or "-" writes Stdout.
	Output string

	// Stdin is the reader used for standard input.
	Stdin io.Reader

	// Stdout is the writer used for standard output.
	Stdout io.Writer

	// Diff writes a unified diff of input and output instead of the output.
	Diff bool

	// Render, when set, post-processes the filtered document before writing.
	// It is ignored in diff mode.
	Render RenderFunc
}

// readsStdin reports whether the input comes from standard input.
func (o Options) readsStdin() bool {
	return o.Input == "" || o.Input == StdioName
}

// writesStdout reports whether the output goes to standard output.
func (o Options) writesStdout() bool {
	return o.Output == "" || o.Output == StdioName
}

// inputName is the display name of the input in logs and diff headers.
func (o Options) inputName() string {
	if o.readsStdin() {
		return "<stdin>"
	}
	return o.Input
}
