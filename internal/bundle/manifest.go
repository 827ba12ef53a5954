package bundle

import (
	"github.com/opmodel/mlbundle/internal/transformer"
)

const (
	// FormatJSON is the only bundle format.
	FormatJSON = "json"

	// SchemaVersion is the default bundle schema version.
	SchemaVersion = "0.4.0-SNAPSHOT"
)

// Manifest summarizes a composite: its name, the bundle format and schema
// version, and the names of its serializable children.
type Manifest struct {
	Name    string   `json:"name" yaml:"name"`
	Format  string   `json:"format" yaml:"format"`
	Version string   `json:"version" yaml:"version"`
	Nodes   []string `json:"nodes" yaml:"nodes"`
}

// DescribeManifest builds the manifest for c. Only direct children whose
// Serializable() is true are listed, in step order. An empty version means
// SchemaVersion. It never touches the filesystem. A nil c yields a manifest
// with an empty name and no nodes.
func DescribeManifest(c transformer.Composite, version string) Manifest {
	if version == "" {
		version = SchemaVersion
	}

	m := Manifest{
		Format:  FormatJSON,
		Version: version,
		Nodes:   []string{},
	}
	if transformer.IsNil(c) {
		return m
	}
	m.Name = c.Name()

	for _, step := range c.Steps() {
		if transformer.IsNil(step.Transformer) || !step.Transformer.Serializable() {
			continue
		}
		m.Nodes = append(m.Nodes, step.Transformer.Name())
	}

	return m
}
