package transformer

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	name := NewName("scaler")

	require.True(t, strings.HasPrefix(name, "scaler_"))
	_, err := uuid.Parse(strings.TrimPrefix(name, "scaler_"))
	assert.NoError(t, err, "suffix should be a UUID")
}

func TestNewLeaf_UniqueNamePerInstance(t *testing.T) {
	a := NewLeaf("scaler", "standard_scaler")
	b := NewLeaf("scaler", "standard_scaler")

	assert.NotEqual(t, a.Name(), b.Name(), "each instance gets its own name")
	assert.Equal(t, "standard_scaler", a.Op())
	assert.True(t, a.Serializable())
}

func TestOptions(t *testing.T) {
	leaf := NewLeaf("imputer", "imputer", WithName("imputer_fixed"), WithSerializable(false))

	assert.Equal(t, "imputer_fixed", leaf.Name())
	assert.False(t, leaf.Serializable())
}

func TestComposites(t *testing.T) {
	steps := []Step{
		{ID: "a", Transformer: NewLeaf("a", "one_hot_encoder")},
		{ID: "b", Transformer: NewLeaf("b", "standard_scaler")},
	}

	t.Run("pipeline", func(t *testing.T) {
		p := NewPipeline("pipe", steps)
		assert.Equal(t, OpPipeline, p.Op())
		assert.Equal(t, steps, p.Steps())
		assert.True(t, strings.HasPrefix(p.Name(), "pipe_"))
	})

	t.Run("feature union", func(t *testing.T) {
		u := NewFeatureUnion("union", steps, WithName("union_1"))
		assert.Equal(t, OpFeatureUnion, u.Op())
		assert.Equal(t, "union_1", u.Name())
		assert.Len(t, u.Steps(), 2)
	})
}

func TestCollectWarnings(t *testing.T) {
	t.Run("clean composite has no warnings", func(t *testing.T) {
		u := NewFeatureUnion("u", []Step{
			{ID: "a", Transformer: NewLeaf("a", "scaler")},
		})
		assert.Empty(t, CollectWarnings(u))
	})

	t.Run("reports non-serializable, duplicates and nil steps", func(t *testing.T) {
		shared := NewLeaf("s", "scaler", WithName("shared"))
		nested := NewPipeline("p", []Step{
			{ID: "x", Transformer: shared},
		}, WithName("p_1"))
		u := NewFeatureUnion("u", []Step{
			{ID: "a", Transformer: NewLeaf("a", "scaler", WithSerializable(false), WithName("a_1"))},
			{ID: "a", Transformer: shared},
			{ID: "n", Transformer: nested},
			{ID: "empty"},
		}, WithName("u_1"))

		warnings := CollectWarnings(u)

		require.Len(t, warnings, 4)
		assert.Contains(t, warnings[0], `step "a" (a_1) is not serializable`)
		assert.Contains(t, warnings[1], `duplicate step id "a"`)
		assert.Contains(t, warnings[2], "name shared already used under u_1")
		assert.Contains(t, warnings[3], `step "empty" has no transformer`)
	})
}

func TestIsNil(t *testing.T) {
	var leaf *Leaf
	var pipe *Pipeline

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(leaf))
	assert.True(t, IsNil(pipe))
	assert.False(t, IsNil(NewLeaf("a", "pca")))
}

func TestCollectWarnings_TypedNilStep(t *testing.T) {
	var leaf *Leaf
	union := NewFeatureUnion("u", []Step{{ID: "nil", Transformer: leaf}}, WithName("u_1"))

	warnings := CollectWarnings(union)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "has no transformer")
}
