package rewrite

import (
	"context"

	"github.com/yaklabco/slidefilter/pkg/config"
)

// StageContext carries what a stage needs besides the text itself.
// It is created per stage invocation and never retained.
type StageContext struct {
	// Ctx is the context for cancellation and logging.
	Ctx context.Context

	// StageConfig is the stage-specific configuration (may be nil).
	StageConfig *config.StageConfig
}

// NewStageContext creates a StageContext for a single stage invocation.
func NewStageContext(ctx context.Context, stageCfg *config.StageConfig) *StageContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &StageContext{
		Ctx:         ctx,
		StageConfig: stageCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (sc *StageContext) Cancelled() bool {
	select {
	case <-sc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a stage-specific option value, or the default if not set.
func (sc *StageContext) Option(key string, defaultValue any) any {
	if sc.StageConfig == nil || sc.StageConfig.Options == nil {
		return defaultValue
	}
	if v, ok := sc.StageConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionBool returns a stage-specific boolean option, or the default.
func (sc *StageContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := sc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}
