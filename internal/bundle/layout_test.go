package bundle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/mlbundle/internal/bundle"
)

func TestReadLayout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/out/b_2.node/c_3.node", 0o755))
	require.NoError(t, fsys.MkdirAll("/out/a_1.node", 0o755))
	require.NoError(t, fsys.MkdirAll("/out/not-a-node", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/out/b_2.node/bundle.json", []byte("{}"), 0o644))

	got, err := bundle.ReadLayout(fsys, "/out/")
	require.NoError(t, err)

	want := &bundle.Layout{
		Name:    "out",
		Entries: 1,
		Children: []*bundle.Layout{
			{Name: "a_1"},
			{Name: "b_2", Entries: 1, Children: []*bundle.Layout{
				{Name: "c_3"},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLayout_MissingDir(t *testing.T) {
	_, err := bundle.ReadLayout(afero.NewMemMapFs(), "/missing")
	assert.Error(t, err)
}
