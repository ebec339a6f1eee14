// Package config defines core configuration types for slidefilter.
// These types are pure data structures with no dependency on the config loader.
package config

// StageConfig holds per-stage configuration options.
type StageConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Config is the root configuration structure for slidefilter.
type Config struct {
	// Stages contains per-stage configuration keyed by stage ID or name.
	Stages map[string]StageConfig `yaml:"stages"`

	// CLI-level options (not persisted to config files).

	// Input is the path to read from. Empty means standard input.
	Input string `yaml:"-"`

	// Output is the path to write to. Empty means standard output.
	Output string `yaml:"-"`

	// EnableStages contains stage IDs or names to explicitly enable.
	EnableStages []string `yaml:"-"`

	// DisableStages contains stage IDs or names to explicitly disable.
	DisableStages []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Stages: make(map[string]StageConfig),
	}
}

// Bool returns a pointer to b. Handy for building StageConfig literals.
func Bool(b bool) *bool {
	return &b
}
