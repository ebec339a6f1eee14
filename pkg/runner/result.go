package runner

import "github.com/yaklabco/slidefilter/pkg/rewrite"

// Result describes a completed filter run.
type Result struct {
	// Input is the display name of the document that was read.
	Input string

	// Output is the path written, or "-" for standard output.
	Output string

	// Pipeline is the rewrite pipeline result.
	Pipeline *rewrite.Result

	// BytesRead is the size of the input document.
	BytesRead int

	// BytesWritten is the number of bytes written to the output.
	BytesWritten int
}

// Changed returns true if the pipeline modified the document.
func (r *Result) Changed() bool {
	return r != nil && r.Pipeline != nil && r.Pipeline.Changed()
}

// StagesChanged returns the IDs of the stages that modified the document.
func (r *Result) StagesChanged() []string {
	if r == nil || r.Pipeline == nil {
		return nil
	}
	var ids []string
	for _, outcome := range r.Pipeline.Stages {
		if outcome.Changed {
			ids = append(ids, outcome.ID)
		}
	}
	return ids
}
