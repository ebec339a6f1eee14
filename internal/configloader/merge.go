package configloader

import (
	"slices"

	"github.com/yaklabco/slidefilter/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Stages: deep merge; override's enabled flag and options win per key
//   - Input/Output: override overwrites base if non-empty
//   - EnableStages/DisableStages: appended; a stage override enables is
//     dropped from base's disable list and vice versa, so the later source
//     decides. Within one source, disable still wins at resolve time.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Input != "" {
		result.Input = override.Input
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	result.Stages = mergeStages(base.Stages, override.Stages)

	enable := without(base.EnableStages, override.DisableStages)
	disable := without(base.DisableStages, override.EnableStages)
	result.EnableStages = appendStages(enable, override.EnableStages)
	result.DisableStages = appendStages(disable, override.DisableStages)

	return &result
}

// without returns the keys of list not present in drop.
func without(list, drop []string) []string {
	if len(drop) == 0 {
		return list
	}
	kept := make([]string, 0, len(list))
	for _, key := range list {
		if !slices.Contains(drop, key) {
			kept = append(kept, key)
		}
	}
	return kept
}

func appendStages(base, extra []string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	return append(append([]string(nil), base...), extra...)
}

// mergeStages performs a deep merge of stage configurations.
func mergeStages(base, override map[string]config.StageConfig) map[string]config.StageConfig {
	result := make(map[string]config.StageConfig, len(base)+len(override))

	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeStageConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeStageConfig merges individual stage configurations.
func mergeStageConfig(base, override config.StageConfig) config.StageConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}

	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		for key, val := range base.Options {
			options[key] = val
		}
		for key, val := range override.Options {
			options[key] = val
		}
		result.Options = options
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
