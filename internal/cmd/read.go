package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/mlbundle/internal/bundle"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
)

// NewReadCmd creates the read command. Reading bundles is not supported
// and the command always exits with ExitNotImplemented.
func NewReadCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "read <dir>",
		Short: "Load a composite back from a bundle (not implemented)",
		Long: `Load a composite transformer back from a bundle directory.

Bundles are write-only. This command always fails with exit code 6.
Use 'mlbundle tree' to inspect the node layout instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := bundle.NewWriter().Deserialize(args[0])
			return &oerrors.ExitError{Code: oerrors.ExitNotImplemented, Err: err}
		},
	}
}
