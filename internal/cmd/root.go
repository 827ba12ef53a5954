// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/mlbundle/internal/config"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/output"
	"github.com/opmodel/mlbundle/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is passed explicitly into every sub-command constructor.
type GlobalConfig struct {
	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Config is the loaded config file. Nil if loading failed.
	Config *config.Config

	// Resolved holds final values after flag > env > file > default.
	Resolved *config.ResolvedConfig

	Verbose bool
}

// rootFlags holds raw values of the persistent flags.
type rootFlags struct {
	config        string
	output        string
	schemaVersion string
	verbose       bool
	timestamps    bool
}

// NewRootCmd creates the root command for the mlbundle CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "mlbundle",
		Short: "Write ML pipeline bundles",
		Long: `mlbundle writes composite ML transformers (pipelines and feature unions)
to a directory bundle where every step gets its own <name>.node directory.

It provides commands to:
  - Write a bundle from a pipeline definition file
  - Print or diff the manifest that describes a composite
  - Inspect the node layout of a written bundle`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MLBUNDLE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().StringVar(&flags.schemaVersion, "schema-version", "", "Bundle schema version reported in manifests")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewWriteCmd(gc),
		NewManifestCmd(gc),
		NewTreeCmd(gc),
		NewReadCmd(gc),
		NewConfigCmd(gc),
		NewVersionCmd(),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, gc *GlobalConfig) error {
	configPath := flags.config
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigFile()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
		}
	}
	gc.ConfigPath = configPath
	gc.Verbose = flags.verbose

	// A broken config file must not block commands like `config init`.
	cfg, loadErr := config.NewLoader().Load(configPath)
	gc.Config = cfg

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Debug("config load error", "path", configPath, "error", loadErr)
	}

	gc.Resolved = config.Resolve(config.ResolveOptions{
		ConfigPath:        configPath,
		SchemaVersionFlag: flags.schemaVersion,
		OutputFlag:        flags.output,
		Config:            cfg,
	})

	info := version.GetInfo()
	output.Debug("mlbundle started",
		"version", info.Version,
		"config", configPath,
		"schema_version", gc.Resolved.SchemaVersion,
		"schema_version_source", gc.Resolved.SchemaVersionSource,
	)

	return nil
}

// schemaVersion returns the resolved schema version after validating it.
func (gc *GlobalConfig) schemaVersion() (string, error) {
	if err := config.ValidateSchemaVersion(gc.Resolved.SchemaVersion); err != nil {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
		}
	}
	return gc.Resolved.SchemaVersion, nil
}

// outputFormat returns the resolved output format after validating it.
func (gc *GlobalConfig) outputFormat() (output.Format, error) {
	format, ok := output.ParseFormat(gc.Resolved.Output)
	if !ok {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: fmt.Errorf("%w: invalid output format %q (valid: %s)",
				oerrors.ErrValidation, gc.Resolved.Output, strings.Join(output.ValidFormats(), ", ")),
		}
	}
	return format, nil
}

// toExitError attaches an exit code derived from err, unless it already has one.
func toExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
