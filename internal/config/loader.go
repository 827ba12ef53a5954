package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for mlbundle configuration.
const envPrefix = "MLBUNDLE"

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper knows about.
	_ = v.BindEnv("schemaVersion", envPrefix+"_SCHEMA_VERSION")
	_ = v.BindEnv("overwrite", envPrefix+"_OVERWRITE")
	_ = v.BindEnv("output.format", envPrefix+"_OUTPUT_FORMAT")
	_ = v.BindEnv("log.timestamps", envPrefix+"_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from configFile, or from the default path when empty.
// A missing file is not an error. Environment variables override file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFile returns the file viper last read from.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}
