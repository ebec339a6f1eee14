package configloader

import (
	"os"
	"strings"

	"github.com/yaklabco/slidefilter/pkg/config"
)

// envVarPrefix is the prefix for all slidefilter environment variables.
const envVarPrefix = "SLIDEFILTER_"

// envMapping describes one environment variable and the config list it feeds.
type envMapping struct {
	description string
	apply       func(cfg *config.Config, keys []string)
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ENABLE": {
		description: "Comma-separated stage IDs or names to enable",
		apply: func(cfg *config.Config, keys []string) {
			cfg.EnableStages = append(cfg.EnableStages, keys...)
		},
	},
	"DISABLE": {
		description: "Comma-separated stage IDs or names to disable",
		apply: func(cfg *config.Config, keys []string) {
			cfg.DisableStages = append(cfg.DisableStages, keys...)
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SLIDEFILTER_ (e.g., SLIDEFILTER_ENABLE).
func LoadFromEnv(cfg *config.Config) {
	if cfg == nil {
		return
	}

	for suffix, mapping := range envMappings {
		keys := parseSliceValue(os.Getenv(envVarPrefix + suffix))
		if len(keys) == 0 {
			continue
		}
		mapping.apply(cfg, keys)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace; empty elements are dropped.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
