// Package config provides configuration loading and management.
package config

import (
	"github.com/opmodel/mlbundle/internal/bundle"
)

// OutputConfig contains output-related settings.
type OutputConfig struct {
	// Format is the manifest output format: "yaml" or "json".
	// Env: MLBUNDLE_OUTPUT_FORMAT, Default: "yaml"
	Format string `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the mlbundle configuration file.
type Config struct {
	// SchemaVersion is the bundle schema version reported in manifests.
	// Env: MLBUNDLE_SCHEMA_VERSION, Default: bundle.SchemaVersion
	SchemaVersion string `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty" mapstructure:"schemaVersion"`

	// Overwrite controls whether existing <name>.node directories are replaced.
	// Env: MLBUNDLE_OVERWRITE, Default: true
	Overwrite *bool `json:"overwrite,omitempty" yaml:"overwrite,omitempty" mapstructure:"overwrite"`

	// Output contains output settings.
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `mlbundle config init` to generate the initial config file.
func DefaultConfig() *Config {
	overwrite := true
	timestamps := true
	return &Config{
		SchemaVersion: bundle.SchemaVersion,
		Overwrite:     &overwrite,
		Output:        OutputConfig{Format: "yaml"},
		Log:           LogConfig{Timestamps: &timestamps},
	}
}
