package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/mlbundle/internal/bundle"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
)

func TestManifestCmd_YAML(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)

	stdout, _, err := executeRoot(t, "manifest", "-f", def)
	require.NoError(t, err)

	var m bundle.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, bundle.Manifest{
		Name:    "text_pipeline",
		Format:  bundle.FormatJSON,
		Version: bundle.SchemaVersion,
		Nodes:   []string{"tokenizer_1", "features_1", "model_1"},
	}, m)
}

func TestManifestCmd_JSON(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)

	stdout, _, err := executeRoot(t, "manifest", "-f", def, "-o", "json", "--schema-version", "0.5.0")
	require.NoError(t, err)

	var m bundle.Manifest
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, "0.5.0", m.Version)
	assert.Equal(t, []string{"tokenizer_1", "features_1", "model_1"}, m.Nodes)
}

func TestManifestCmd_SkipsNonSerializable(t *testing.T) {
	def := writeFile(t, "union.yaml", `
name: union_1
op: feature_union
steps:
  - id: a
    name: a_1
    op: pca
    serializable: false
  - id: b
    name: b_1
    op: pca
`)

	stdout, _, err := executeRoot(t, "manifest", "-f", def, "-o", "json")
	require.NoError(t, err)

	var m bundle.Manifest
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, []string{"b_1"}, m.Nodes)
}

func TestManifestCmd_InvalidOutputFormat(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)

	_, _, err := executeRoot(t, "manifest", "-f", def, "-o", "toml")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestManifestDiffCmd_NoChanges(t *testing.T) {
	a := writeFile(t, "a.yaml", textPipelineYAML)
	b := writeFile(t, "b.yaml", textPipelineYAML)

	stdout, _, err := executeRoot(t, "manifest", "diff", a, b)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No changes")
}

func TestManifestDiffCmd_ReportsNodeChange(t *testing.T) {
	a := writeFile(t, "a.yaml", textPipelineYAML)
	b := writeFile(t, "b.yaml", `
name: text_pipeline
op: pipeline
steps:
  - id: tokenizer
    name: tokenizer_1
    op: tokenizer
  - id: model
    name: model_2
    op: logistic_regression
`)

	stdout, _, err := executeRoot(t, "manifest", "diff", a, b)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "No changes")
	assert.Contains(t, stdout, "nodes")
}
