package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/mlbundle/internal/bundle"
	"github.com/opmodel/mlbundle/internal/output"
)

// NewManifestCmd creates the manifest command and its diff sub-command.
func NewManifestCmd(gc *GlobalConfig) *cobra.Command {
	var fileFlag string

	c := &cobra.Command{
		Use:   "manifest",
		Short: "Print the manifest describing a composite",
		Long: `Print the manifest describing a composite transformer.

The manifest lists the composite name, the bundle format, the schema version
and the names of its serializable steps in order. Nothing is written to disk.

Transformer names are generated per run unless the definition sets "name",
so pin names when comparing manifests across runs.

Examples:
  # Print the manifest as YAML
  mlbundle manifest -f pipeline.yaml

  # Print the manifest as JSON with a custom schema version
  mlbundle manifest -f pipeline.yaml -o json --schema-version 0.5.0`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runManifest(c, gc, fileFlag)
		},
	}

	c.Flags().StringVarP(&fileFlag, "file", "f", "", "Definition file (YAML or JSON)")
	_ = c.MarkFlagRequired("file")

	c.AddCommand(newManifestDiffCmd(gc))

	return c
}

func runManifest(c *cobra.Command, gc *GlobalConfig, file string) error {
	schemaVersion, err := gc.schemaVersion()
	if err != nil {
		return err
	}
	format, err := gc.outputFormat()
	if err != nil {
		return err
	}

	root, err := loadComposite(file)
	if err != nil {
		return err
	}

	m := bundle.DescribeManifest(root, schemaVersion)
	return output.WriteDocument(m, format, c.OutOrStdout())
}

func newManifestDiffCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare the manifests of two definition files",
		Long: `Compare the manifests of two definition files.

Both definitions are built and described with the same schema version.
The differences are printed as a dyff report.

Examples:
  mlbundle manifest diff old.yaml new.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runManifestDiff(c, gc, args[0], args[1])
		},
	}
}

func runManifestDiff(c *cobra.Command, gc *GlobalConfig, fromFile, toFile string) error {
	schemaVersion, err := gc.schemaVersion()
	if err != nil {
		return err
	}

	from, err := manifestYAML(fromFile, schemaVersion)
	if err != nil {
		return err
	}
	to, err := manifestYAML(toFile, schemaVersion)
	if err != nil {
		return err
	}

	report, err := output.DiffDocuments(fromFile, from, toFile, to, output.IsTTY())
	if err != nil {
		return toExitError(err)
	}

	out := c.OutOrStdout()
	if report == "" {
		fmt.Fprintln(out, "No changes")
		return nil
	}
	fmt.Fprintln(out, report)
	return nil
}

func manifestYAML(file, schemaVersion string) ([]byte, error) {
	root, err := loadComposite(file)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(bundle.DescribeManifest(root, schemaVersion))
	if err != nil {
		return nil, toExitError(fmt.Errorf("encoding manifest for %s: %w", file, err))
	}
	return data, nil
}
