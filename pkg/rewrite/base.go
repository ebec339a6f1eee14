package rewrite

// BaseStage provides a default implementation of the Stage metadata methods.
// Embed this in stage implementations and override methods as needed.
type BaseStage struct {
	id      string
	name    string
	desc    string
	enabled bool
}

// NewBaseStage creates a BaseStage with the given properties.
func NewBaseStage(id, name, desc string, enabled bool) BaseStage {
	return BaseStage{
		id:      id,
		name:    name,
		desc:    desc,
		enabled: enabled,
	}
}

// ID returns the unique identifier for this stage.
func (s *BaseStage) ID() string {
	return s.id
}

// Name returns the human-readable name of the stage.
func (s *BaseStage) Name() string {
	return s.name
}

// Description returns a one-line description of the stage.
func (s *BaseStage) Description() string {
	return s.desc
}

// DefaultEnabled returns whether the stage is enabled by default.
func (s *BaseStage) DefaultEnabled() bool {
	return s.enabled
}

// DefaultOptions returns nil; stages with options override it.
func (s *BaseStage) DefaultOptions() map[string]any {
	return nil
}

// Rewrite must be overridden by concrete stages.
// The default implementation returns the text unchanged.
func (s *BaseStage) Rewrite(_ *StageContext, text string) (string, error) {
	return text, nil
}
