package rewrite

import (
	"context"
	"fmt"

	"github.com/yaklabco/slidefilter/internal/logging"
	"github.com/yaklabco/slidefilter/pkg/config"
)

// StageError wraps a failure raised by a single stage.
type StageError struct {
	// ID is the failing stage's identifier.
	ID string

	// Name is the failing stage's name.
	Name string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s (%s): %v", e.ID, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOutcome records what a single stage did to the document.
type StageOutcome struct {
	ID      string
	Name    string
	Changed bool
}

// Result contains the output of one pipeline run.
type Result struct {
	// Input is the text the pipeline started from.
	Input string

	// Output is the text after the last stage.
	Output string

	// Stages lists every stage that ran, in order.
	Stages []StageOutcome
}

// Changed returns true if any stage modified the document.
func (r *Result) Changed() bool {
	return r.Input != r.Output
}

// Pipeline applies a fixed, ordered list of stages to a document.
type Pipeline struct {
	stages []ResolvedStage
}

// NewPipeline resolves the enabled stages for cfg from registry.
func NewPipeline(registry *Registry, cfg *config.Config) (*Pipeline, error) {
	stages, err := ResolveStages(registry, cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{stages: stages}, nil
}

// Stages returns the resolved stages in the order they run.
func (p *Pipeline) Stages() []ResolvedStage {
	return p.stages
}

// Run applies every enabled stage to text in sequence.
// The context is checked between stages; stages themselves run to completion.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := &Result{
		Input:  text,
		Stages: make([]StageOutcome, 0, len(p.stages)),
	}

	current := text
	for _, rs := range p.stages {
		stage := rs.Stage
		sc := NewStageContext(logging.WithStage(ctx, stage.ID(), stage.Name()), rs.Config)
		if sc.Cancelled() {
			return nil, fmt.Errorf("pipeline cancelled before %s: %w", stage.ID(), sc.Ctx.Err())
		}

		out, err := stage.Rewrite(sc, current)
		if err != nil {
			return nil, &StageError{ID: stage.ID(), Name: stage.Name(), Err: err}
		}

		changed := out != current
		logger.Debug("stage applied",
			logging.FieldStage, stage.ID(),
			logging.FieldName, stage.Name(),
			logging.FieldChanged, changed,
		)

		result.Stages = append(result.Stages, StageOutcome{
			ID:      stage.ID(),
			Name:    stage.Name(),
			Changed: changed,
		})
		current = out
	}

	result.Output = current
	return result, nil
}
