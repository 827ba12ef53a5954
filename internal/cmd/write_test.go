package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/mlbundle/internal/bundle"
	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/testutil"
)

func TestWriteCmd_WritesNodes(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)
	out := t.TempDir()

	stdout, _, err := executeRoot(t, "write", "-f", def, "--out", out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"features_1.node",
		"features_1.node/cast_1.node",
		"features_1.node/tfidf_1.node",
		"model_1.node",
		"tokenizer_1.node",
	}, testutil.NodePaths(t, out))
	assert.Contains(t, stdout, "tokenizer_1.node")
	assert.Contains(t, stdout, "created")
	assert.Contains(t, stdout, "wrote 5 nodes")
}

func TestWriteCmd_RerunReplaces(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)
	out := t.TempDir()

	_, _, err := executeRoot(t, "write", "-f", def, "--out", out)
	require.NoError(t, err)

	stale := filepath.Join(out, "model_1.node", "stale.bin")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	stdout, _, err := executeRoot(t, "write", "-f", def, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "replaced")
	assert.NoFileExists(t, stale)
}

func TestWriteCmd_NoOverwrite(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)
	out := t.TempDir()
	require.NoError(t, os.Mkdir(bundle.NodeDir(out, "tokenizer_1"), 0o755))

	_, _, err := executeRoot(t, "write", "-f", def, "--out", out, "--no-overwrite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite is disabled")
}

func TestWriteCmd_MissingOutDir(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)

	_, _, err := executeRoot(t, "write", "-f", def, "--out", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestWriteCmd_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "leaf root", doc: "op: standard_scaler\n"},
		{name: "duplicate ids", doc: "op: pipeline\nsteps:\n  - id: a\n    op: pca\n  - id: a\n    op: pca\n"},
		{name: "unknown field", doc: "op: pipeline\nkind: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := writeFile(t, "def.yaml", tt.doc)

			_, _, err := executeRoot(t, "write", "-f", def, "--out", t.TempDir())
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestWriteCmd_MissingDefinition(t *testing.T) {
	_, _, err := executeRoot(t, "write", "-f", filepath.Join(t.TempDir(), "nope.yaml"), "--out", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestWriteCmd_InvalidSchemaVersion(t *testing.T) {
	def := writeFile(t, "pipeline.yaml", textPipelineYAML)

	_, _, err := executeRoot(t, "--schema-version", "latest", "write", "-f", def, "--out", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}
