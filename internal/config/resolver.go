package config

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceConfig indicates value came from the config file or environment.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveOptions carries raw flag values. Empty strings mean "not set".
type ResolveOptions struct {
	// ConfigPath is the resolved config file path, for reporting.
	ConfigPath string

	SchemaVersionFlag string
	OutputFlag        string

	// Config is the loaded config. May be nil.
	Config *Config
}

// ResolvedConfig holds final values after applying flag > env > file > default.
// The loader already applies env over file, so both report SourceConfig.
type ResolvedConfig struct {
	ConfigPath string

	SchemaVersion       string
	SchemaVersionSource ConfigSource

	Output       string
	OutputSource ConfigSource

	Overwrite bool
}

// Resolve applies precedence to every setting the CLI uses.
func Resolve(opts ResolveOptions) *ResolvedConfig {
	var fileCfg *Config
	if opts.Config != nil {
		fileCfg = opts.Config
	} else {
		fileCfg = &Config{}
	}
	defaults := DefaultConfig()

	r := &ResolvedConfig{ConfigPath: opts.ConfigPath}

	r.SchemaVersion, r.SchemaVersionSource = resolveString(
		opts.SchemaVersionFlag, fileCfg.SchemaVersion, defaults.SchemaVersion)
	r.Output, r.OutputSource = resolveString(
		opts.OutputFlag, fileCfg.Output.Format, defaults.Output.Format)

	r.Overwrite = *defaults.Overwrite
	if fileCfg.Overwrite != nil {
		r.Overwrite = *fileCfg.Overwrite
	}

	return r
}

func resolveString(flag, cfg, def string) (string, ConfigSource) {
	switch {
	case flag != "":
		return flag, SourceFlag
	case cfg != "":
		return cfg, SourceConfig
	default:
		return def, SourceDefault
	}
}
