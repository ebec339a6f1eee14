// Package rewrite provides the stage framework, registry and pipeline for slidefilter.
//
// A stage is one independent text rewrite. The pipeline runs the enabled
// stages in ascending ID order, feeding each stage the previous one's output.
package rewrite

// Stage defines the interface that all rewrite stages must implement.
type Stage interface {
	// ID returns the unique identifier for this stage (e.g., "SF001").
	// Pipeline order is the lexical order of IDs.
	ID() string

	// Name returns the human-readable name of the stage.
	Name() string

	// Description returns a one-line description of what the stage rewrites.
	Description() string

	// DefaultEnabled returns whether the stage runs when nothing configures it.
	DefaultEnabled() bool

	// DefaultOptions returns the options the stage understands with their defaults.
	DefaultOptions() map[string]any

	// Rewrite transforms the whole document and returns the new text.
	//
	// Stages must:
	//   - Leave lines they do not match byte-identical.
	//   - Keep any per-document state local to a single call.
	//   - Return an error only for conditions they cannot render.
	Rewrite(sc *StageContext, text string) (string, error)
}
