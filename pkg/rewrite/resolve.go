package rewrite

import (
	"fmt"

	"github.com/yaklabco/slidefilter/pkg/config"
)

// ResolvedStage pairs a Stage with its resolved configuration.
type ResolvedStage struct {
	// Stage is the underlying stage implementation.
	Stage Stage

	// Enabled indicates whether the stage should run.
	Enabled bool

	// Config is the stage-specific configuration (may be nil).
	Config *config.StageConfig
}

// ResolveStages determines which stages to run, in pipeline order.
//
// Enablement precedence, lowest to highest: the stage default, the
// config file's stages.<key>.enabled, cfg.EnableStages, cfg.DisableStages.
// Keys may be stage IDs or names. An unknown key in EnableStages or
// DisableStages is an error; unknown config keys are ignored here and
// reported by config validation.
func ResolveStages(registry *Registry, cfg *config.Config) ([]ResolvedStage, error) {
	stageConfigs := make(map[string]config.StageConfig)
	var enable, disable map[string]bool

	if cfg != nil {
		for key, stageCfg := range cfg.Stages {
			if id, ok := registry.Resolve(key); ok {
				stageConfigs[id] = stageCfg
			}
		}

		var err error
		if enable, err = resolveKeys(registry, cfg.EnableStages); err != nil {
			return nil, fmt.Errorf("enable: %w", err)
		}
		if disable, err = resolveKeys(registry, cfg.DisableStages); err != nil {
			return nil, fmt.Errorf("disable: %w", err)
		}
	}

	var resolved []ResolvedStage
	for _, stage := range registry.Stages() {
		rs := ResolvedStage{
			Stage:   stage,
			Enabled: stage.DefaultEnabled(),
		}

		if stageCfg, ok := stageConfigs[stage.ID()]; ok {
			rs.Config = &stageCfg
			if stageCfg.Enabled != nil {
				rs.Enabled = *stageCfg.Enabled
			}
		}
		if enable[stage.ID()] {
			rs.Enabled = true
		}
		if disable[stage.ID()] {
			rs.Enabled = false
		}

		if rs.Enabled {
			resolved = append(resolved, rs)
		}
	}

	return resolved, nil
}

// resolveKeys maps stage IDs or names to a set of canonical IDs.
func resolveKeys(registry *Registry, keys []string) (map[string]bool, error) {
	ids := make(map[string]bool, len(keys))
	for _, key := range keys {
		id, ok := registry.Resolve(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, key)
		}
		ids[id] = true
	}
	return ids, nil
}
