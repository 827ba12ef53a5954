package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/mlbundle/internal/bundle"
	"github.com/opmodel/mlbundle/internal/definition"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/output"
	"github.com/opmodel/mlbundle/internal/transformer"
)

// NewWriteCmd creates the write command.
func NewWriteCmd(gc *GlobalConfig) *cobra.Command {
	var (
		fileFlag        string
		outDirFlag      string
		noOverwriteFlag bool
	)

	c := &cobra.Command{
		Use:   "write",
		Short: "Write a bundle from a definition file",
		Long: `Write a composite transformer to a bundle directory.

Every step of the composite gets a <name>.node directory under --out.
Pipelines and feature unions are written recursively inside their own
node directory. An existing node directory is removed before it is
recreated unless --no-overwrite is set.

The destination directory must already exist.

Examples:
  # Write a bundle into ./bundle
  mlbundle write -f pipeline.yaml --out ./bundle

  # Fail instead of replacing existing node directories
  mlbundle write -f pipeline.yaml --out ./bundle --no-overwrite`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runWrite(c, gc, fileFlag, outDirFlag, noOverwriteFlag)
		},
	}

	c.Flags().StringVarP(&fileFlag, "file", "f", "", "Definition file (YAML or JSON)")
	c.Flags().StringVar(&outDirFlag, "out", ".", "Existing directory to write the bundle into")
	c.Flags().BoolVar(&noOverwriteFlag, "no-overwrite", false, "Fail if a node directory already exists")
	_ = c.MarkFlagRequired("file")

	return c
}

func runWrite(c *cobra.Command, gc *GlobalConfig, file, outDir string, noOverwrite bool) error {
	schemaVersion, err := gc.schemaVersion()
	if err != nil {
		return err
	}

	root, err := loadComposite(file)
	if err != nil {
		return err
	}

	for _, w := range transformer.CollectWarnings(root) {
		output.Warn(w)
	}

	type nodeLine struct {
		path   string
		status string
	}
	var lines []nodeLine

	writer := bundle.NewWriter(
		bundle.WithOverwrite(gc.Resolved.Overwrite && !noOverwrite),
		bundle.WithSchemaVersion(schemaVersion),
		bundle.WithLogger(output.BundleLogger(root.Name())),
		bundle.WithNodeHook(func(e bundle.NodeEvent) {
			rel, relErr := filepath.Rel(outDir, e.Path)
			if relErr != nil {
				rel = e.Path
			}
			status := output.StatusCreated
			if e.Replaced {
				status = output.StatusReplaced
			}
			lines = append(lines, nodeLine{path: rel, status: status})
		}),
	)

	writeErr := output.RunWithSpinner(c.Context(), "Writing bundle "+root.Name(), func() error {
		return writer.Serialize(root, outDir)
	})

	out := c.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintln(out, output.FormatNodeLine(l.path, l.status))
	}

	if writeErr != nil {
		return toExitError(writeErr)
	}

	fmt.Fprintln(out, output.FormatCheckmark(
		fmt.Sprintf("wrote %d nodes for %s to %s", len(lines), output.StyleNoun.Render(root.Name()), outDir)))
	return nil
}

// loadComposite loads and builds the definition at file.
func loadComposite(file string) (transformer.Composite, error) {
	def, err := definition.LoadFile(file)
	if err != nil {
		return nil, toExitError(err)
	}

	root, err := def.Build()
	if err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = file
		}
		return nil, toExitError(err)
	}

	return root, nil
}
