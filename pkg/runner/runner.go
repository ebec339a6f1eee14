package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/yaklabco/slidefilter/internal/logging"
	"github.com/yaklabco/slidefilter/pkg/fsutil"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	"github.com/yaklabco/slidefilter/pkg/textdiff"
)

// ErrInvalidUTF8 is returned when the input document is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Runner ties input, the rewrite pipeline and output together.
type Runner struct {
	// Pipeline is the configured rewrite pipeline.
	Pipeline *rewrite.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *rewrite.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run reads the input named by opts, filters it and writes the output.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	content, err := r.read(ctx, opts)
	if err != nil {
		return nil, err
	}

	name := opts.inputName()
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}

	logger.Debug("filtering document",
		logging.FieldInput, name,
		logging.FieldBytes, len(content),
		logging.FieldStages, len(r.Pipeline.Stages()),
	)

	filtered, err := r.Pipeline.Run(ctx, string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out, err := r.render(ctx, opts, name, filtered)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:     name,
		Output:    StdioName,
		Pipeline:  filtered,
		BytesRead: len(content),
	}

	if opts.writesStdout() {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		n, err := stdout.Write(out)
		if err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
		result.BytesWritten = n
	} else {
		if err := fsutil.WriteAtomic(ctx, opts.Output, out, 0); err != nil {
			return nil, fmt.Errorf("write %s: %w", opts.Output, err)
		}
		result.Output = opts.Output
		result.BytesWritten = len(out)
	}

	logger.Debug("document written",
		logging.FieldOutput, result.Output,
		logging.FieldBytes, result.BytesWritten,
		logging.FieldChanged, result.Changed(),
	)

	return result, nil
}

// read loads the input document from a file or standard input.
func (r *Runner) read(ctx context.Context, opts Options) ([]byte, error) {
	if !opts.readsStdin() {
		content, _, err := fsutil.ReadFile(ctx, opts.Input)
		if err != nil {
			return nil, err
		}
		return content, nil
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if isTerminal(stdin) {
		logging.FromContext(ctx).Info("reading slides from standard input; press Ctrl-D to finish")
	}
	return fsutil.ReadAll(ctx, stdin)
}

// render produces the bytes to write: a diff, a rendered form, or the text.
func (r *Runner) render(ctx context.Context, opts Options, name string, filtered *rewrite.Result) ([]byte, error) {
	if opts.Diff {
		return []byte(textdiff.Unified(name, name+" (filtered)", filtered.Input, filtered.Output)), nil
	}

	if opts.Render == nil {
		return []byte(filtered.Output), nil
	}

	var buf bytes.Buffer
	if err := opts.Render(ctx, []byte(filtered.Output), &buf); err != nil {
		return nil, fmt.Errorf("render output: %w", err)
	}
	return buf.Bytes(), nil
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
