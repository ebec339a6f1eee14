// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation against the stage registry.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry resolves stage names and validates options.
	// Defaults to rewrite.DefaultRegistry.
	Registry *rewrite.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (SLIDEFILTER_ENABLE, SLIDEFILTER_DISABLE)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.slidefilter.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/slidefilter/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	registry := opts.Registry
	if registry == nil {
		registry = rewrite.DefaultRegistry
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	sources := []struct {
		path    string
		ignored bool
	}{
		{paths.User, opts.IgnoreUserConfig},
		{paths.Project, opts.IgnoreProjectConfig},
		{paths.Explicit, false},
	}
	for _, src := range sources {
		if src.ignored || src.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(src.path)
		if err != nil {
			return nil, err
		}

		validation := ValidateWithFile(fileCfg, registry, src.path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		for _, w := range validation.Warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}

		normalizeStageKeys(fileCfg, registry, src.path, result)
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, src.path)
	}

	if !opts.IgnoreEnv {
		envCfg := &config.Config{}
		LoadFromEnv(envCfg)
		normalizeStageKeys(envCfg, registry, "", result)
		cfg = merge(cfg, envCfg)
	}

	if opts.CLIConfig != nil {
		cliCfg := opts.CLIConfig.Clone()
		normalizeStageKeys(cliCfg, registry, "", result)
		cfg = merge(cfg, cliCfg)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// normalizeStageKeys converts stage names to canonical IDs in the config,
// both in the stages map and in the enable/disable lists. Unknown keys are
// kept so the pipeline can report them. If a stage is configured by both ID
// and name in the same source, the result is order-dependent, so a warning
// is recorded.
func normalizeStageKeys(cfg *config.Config, registry *rewrite.Registry, source string, result *LoadResult) {
	cfg.EnableStages = normalizeStageList(cfg.EnableStages, registry)
	cfg.DisableStages = normalizeStageList(cfg.DisableStages, registry)

	if len(cfg.Stages) == 0 {
		return
	}

	normalized := make(map[string]config.StageConfig, len(cfg.Stages))
	seenIDs := make(map[string]string)

	for key, stageCfg := range cfg.Stages {
		id, found := registry.Resolve(key)
		if !found {
			normalized[key] = stageCfg
			continue
		}

		if originalKey, exists := seenIDs[id]; exists {
			msg := fmt.Sprintf("duplicate stage configuration: %q and %q both refer to %s", originalKey, key, id)
			if source != "" {
				msg = source + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
			normalized[id] = mergeStageConfig(normalized[id], stageCfg)
		} else {
			normalized[id] = stageCfg
		}
		seenIDs[id] = key
	}

	cfg.Stages = normalized
}

// normalizeStageList maps each known stage name to its ID.
func normalizeStageList(keys []string, registry *rewrite.Registry) []string {
	if len(keys) == 0 {
		return keys
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		if id, ok := registry.Resolve(key); ok {
			out[i] = id
		} else {
			out[i] = key
		}
	}
	return out
}
