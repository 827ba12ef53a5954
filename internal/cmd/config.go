package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/mlbundle/internal/config"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the mlbundle configuration file",
		Long: `Manage the mlbundle configuration file.

The file lives at ~/.mlbundle/config.yaml unless --config or MLBUNDLE_CONFIG
points elsewhere.`,
	}

	c.AddCommand(newConfigInitCmd(gc), newConfigVetCmd(gc))
	return c
}

func newConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

An existing file is left untouched unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, gc, force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return c
}

func runConfigInit(c *cobra.Command, gc *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return toExitError(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return toExitError(fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte("# mlbundle configuration\n\n"), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return toExitError(fmt.Errorf("writing config file: %w", err))
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}

func newConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file.

The schema version must be a semantic version and the output format one of
yaml or json.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, gc)
		},
	}
}

func runConfigVet(c *cobra.Command, gc *GlobalConfig) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return toExitError(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return toExitError(oerrors.NewNotFoundError("config file not found", path,
			"Run 'mlbundle config init' to create one."))
	}

	if err := config.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range verrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return oerrors.NewExitError(
			fmt.Errorf("%w: %w", oerrors.ErrValidation, err), oerrors.ExitValidationError)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
	return nil
}
