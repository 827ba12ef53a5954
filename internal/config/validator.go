package config

import (
	"fmt"
	"regexp"
	"strings"
)

// semverRegex accepts MAJOR.MINOR.PATCH with optional pre-release and build metadata.
var semverRegex = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks cfg. Unset fields are valid.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if err := ValidateSchemaVersion(cfg.SchemaVersion); err != nil {
		errs = append(errs, *err.(*ValidationError))
	}

	switch strings.ToLower(cfg.Output.Format) {
	case "", "yaml", "yml", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unknown format %q (valid: yaml, json)", cfg.Output.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSchemaVersion checks that version looks like a semantic version.
func ValidateSchemaVersion(version string) error {
	if version == "" || semverRegex.MatchString(version) {
		return nil
	}
	return &ValidationError{
		Field:   "schemaVersion",
		Message: fmt.Sprintf("%q is not a semantic version (e.g. 0.4.0-SNAPSHOT)", version),
	}
}

// ValidateFile loads the file at path and validates it.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return Validate(cfg)
}
