package config

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Stages == nil {
		cfg.Stages = make(map[string]StageConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Input:  c.Input,
		Output: c.Output,
	}

	if c.Stages != nil {
		clone.Stages = make(map[string]StageConfig, len(c.Stages))
		for k, v := range c.Stages {
			clone.Stages[k] = v.clone()
		}
	}

	if c.EnableStages != nil {
		clone.EnableStages = append([]string(nil), c.EnableStages...)
	}
	if c.DisableStages != nil {
		clone.DisableStages = append([]string(nil), c.DisableStages...)
	}

	return clone
}

// clone creates a deep copy of a StageConfig.
func (sc StageConfig) clone() StageConfig {
	clone := StageConfig{}

	if sc.Enabled != nil {
		enabled := *sc.Enabled
		clone.Enabled = &enabled
	}

	if sc.Options != nil {
		clone.Options = make(map[string]any, len(sc.Options))
		maps.Copy(clone.Options, sc.Options) // nested values are shared
	}

	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
