package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffDocuments_Equal(t *testing.T) {
	doc := []byte("name: u_1\nnodes:\n  - a_1\n")

	out, err := DiffDocuments("from", doc, "to", doc, false)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffDocuments_Changed(t *testing.T) {
	from := []byte("name: u_1\nversion: 0.4.0-SNAPSHOT\n")
	to := []byte("name: u_1\nversion: 0.5.0\n")

	out, err := DiffDocuments("from", from, "to", to, false)

	require.NoError(t, err)
	assert.Contains(t, out, "version")
	assert.Contains(t, out, "0.5.0")
}

func TestDiffDocuments_InvalidYAML(t *testing.T) {
	_, err := DiffDocuments("from", []byte("a: [1"), "to", []byte("a: 1"), false)
	assert.Error(t, err)
}
