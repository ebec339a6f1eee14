package configloader

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// ErrInvalidConfig marks configuration files that cannot be read or parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "stages.container.options.blank_line").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Is reports ErrInvalidConfig as the category of every validation error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown stages).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration against the stages in registry.
//
// Unknown stage keys and unknown option names are warnings. An option whose
// stage default is a bool must be a bool.
func Validate(cfg *config.Config, registry *rewrite.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	keys := make([]string, 0, len(cfg.Stages))
	for key := range cfg.Stages {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		stage, ok := registry.Get(key)
		if !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "stages." + key,
				Value:   key,
				Message: fmt.Sprintf("unknown stage %q; it will be ignored", key),
			})
			continue
		}
		validateOptions(key, stage, cfg.Stages[key].Options, result)
	}

	return result
}

// validateOptions checks option names and value types against the stage defaults.
func validateOptions(key string, stage rewrite.Stage, options map[string]any, result *ValidationResult) {
	defaults := stage.DefaultOptions()

	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		field := "stages." + key + ".options." + name
		value := options[name]

		def, known := defaults[name]
		if !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("unknown option %q for stage %s; it will be ignored", name, stage.ID()),
			})
			continue
		}

		if _, isBool := def.(bool); !isBool {
			continue
		}
		if _, ok := value.(bool); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("must be a boolean, got %v", value),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *rewrite.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
