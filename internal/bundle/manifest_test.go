package bundle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/mlbundle/internal/bundle"
	"github.com/opmodel/mlbundle/internal/transformer"
)

func TestDescribeManifest(t *testing.T) {
	tests := []struct {
		name      string
		composite transformer.Composite
		version   string
		want      bundle.Manifest
	}{
		{
			name:      "feature union keeps step order",
			composite: exampleUnion(),
			want: bundle.Manifest{
				Name:    "features_1",
				Format:  "json",
				Version: bundle.SchemaVersion,
				Nodes:   []string{"a_123", "b_456"},
			},
		},
		{
			name: "pipeline is described the same way",
			composite: transformer.NewPipeline("p", []transformer.Step{
				{ID: "z", Transformer: transformer.NewLeaf("z", "scaler", transformer.WithName("z_1"))},
				{ID: "a", Transformer: transformer.NewLeaf("a", "pca", transformer.WithName("a_1"))},
			}, transformer.WithName("p_1")),
			version: "1.0.0",
			want: bundle.Manifest{
				Name:    "p_1",
				Format:  "json",
				Version: "1.0.0",
				Nodes:   []string{"z_1", "a_1"},
			},
		},
		{
			name: "non-serializable and empty steps are skipped",
			composite: transformer.NewFeatureUnion("u", []transformer.Step{
				{ID: "a", Transformer: transformer.NewLeaf("a", "scaler", transformer.WithName("a_1"))},
				{ID: "b", Transformer: transformer.NewLeaf("b", "custom", transformer.WithName("b_1"), transformer.WithSerializable(false))},
				{ID: "c"},
				{ID: "d", Transformer: transformer.NewLeaf("d", "pca", transformer.WithName("d_1"))},
			}, transformer.WithName("u_1")),
			want: bundle.Manifest{
				Name:    "u_1",
				Format:  "json",
				Version: bundle.SchemaVersion,
				Nodes:   []string{"a_1", "d_1"},
			},
		},
		{
			name:      "no steps",
			composite: transformer.NewFeatureUnion("u", nil, transformer.WithName("u_2")),
			want: bundle.Manifest{
				Name:    "u_2",
				Format:  "json",
				Version: bundle.SchemaVersion,
				Nodes:   []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bundle.DescribeManifest(tt.composite, tt.version))
		})
	}
}

func TestManifest_JSONShape(t *testing.T) {
	m := bundle.DescribeManifest(transformer.NewFeatureUnion("u", nil, transformer.WithName("u_1")), "")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"u_1","format":"json","version":"0.4.0-SNAPSHOT","nodes":[]}`, string(data))
}

func TestWriterManifest_UsesSchemaVersion(t *testing.T) {
	w := bundle.NewWriter(bundle.WithSchemaVersion("0.5.0"))
	assert.Equal(t, "0.5.0", w.Manifest(exampleUnion()).Version)
}

func TestDescribeManifest_NilComposite(t *testing.T) {
	var typedNil *transformer.FeatureUnion

	for _, c := range []transformer.Composite{nil, typedNil} {
		m := bundle.DescribeManifest(c, "")
		assert.Equal(t, bundle.Manifest{
			Format:  bundle.FormatJSON,
			Version: bundle.SchemaVersion,
			Nodes:   []string{},
		}, m)
	}
}

func TestDescribeManifest_SkipsTypedNilStep(t *testing.T) {
	var leaf *transformer.Leaf
	union := transformer.NewFeatureUnion("u", []transformer.Step{
		{ID: "nil", Transformer: leaf},
		{ID: "a", Transformer: transformer.NewLeaf("a", "pca", transformer.WithName("a_1"))},
	}, transformer.WithName("u_1"))

	assert.Equal(t, []string{"a_1"}, bundle.DescribeManifest(union, "").Nodes)
}
