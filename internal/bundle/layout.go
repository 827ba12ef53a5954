package bundle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Layout is the node directory structure found on disk.
type Layout struct {
	// Name is the transformer name (the directory name without NodeSuffix).
	// For the root it is the base name of the inspected directory.
	Name string

	// Entries counts non-node entries inside the directory.
	Entries int

	// Children are nested node directories, sorted by name.
	Children []*Layout
}

// ReadLayout walks the *.node directories under dir. Other entries are
// counted but not descended into. It does not rebuild transformers.
func ReadLayout(fs afero.Fs, dir string) (*Layout, error) {
	root := &Layout{Name: filepath.Base(filepath.Clean(dir))}
	if err := readLayout(fs, dir, root); err != nil {
		return nil, err
	}
	return root, nil
}

func readLayout(fs afero.Fs, dir string, node *Layout) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), NodeSuffix) {
			node.Entries++
			continue
		}

		child := &Layout{Name: strings.TrimSuffix(entry.Name(), NodeSuffix)}
		if err := readLayout(fs, filepath.Join(dir, entry.Name()), child); err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}

	return nil
}
