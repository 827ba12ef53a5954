package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/mlbundle/internal/bundle"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/output"
)

// NewTreeCmd creates the tree command.
func NewTreeCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <dir>",
		Short: "Show the node layout of a written bundle",
		Long: `Show the <name>.node directories found under a bundle directory.

Only the directory layout is inspected. Transformers are not rebuilt.

Examples:
  mlbundle tree ./bundle`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTree(c, afero.NewOsFs(), args[0])
		},
	}
}

func runTree(c *cobra.Command, fs afero.Fs, dir string) error {
	if _, err := fs.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return toExitError(oerrors.NewNotFoundError("bundle directory does not exist", dir, ""))
		}
		return toExitError(err)
	}

	layout, err := bundle.ReadLayout(fs, dir)
	if err != nil {
		return toExitError(err)
	}

	fmt.Fprint(c.OutOrStdout(), output.RenderTree(layoutToTree(layout, true)))
	return nil
}

func layoutToTree(l *bundle.Layout, isRoot bool) *output.TreeNode {
	name := l.Name
	if !isRoot {
		name += bundle.NodeSuffix
	}

	node := &output.TreeNode{Name: name, IsDir: true}
	switch {
	case l.Entries == 1:
		node.Description = "1 file"
	case l.Entries > 1:
		node.Description = fmt.Sprintf("%d files", l.Entries)
	case len(l.Children) == 0:
		node.Description = "empty"
	}

	for _, child := range l.Children {
		node.Children = append(node.Children, layoutToTree(child, false))
	}
	return node
}
