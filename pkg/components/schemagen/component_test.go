package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component/registry"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/jsonutil"
	"github.com/cadenza-ml/cadenza/pkg/testutil"
)

const defaultingMsg = "excluding no splits because exclude_splits is not set"

func TestNew(t *testing.T) {
	t.Run("minimal construction", func(t *testing.T) {
		logs := testutil.ObservedLogs(t)

		gen, err := New(Params{
			Statistics: channel.New(artifact.ExampleStatistics),
		})
		require.NoError(t, err)

		outputs := gen.Outputs()
		require.Len(t, outputs, 1)
		assert.Equal(t, artifact.Schema, outputs[SchemaKey].ArtifactType())

		var splits []string
		require.NoError(t, jsonutil.Loads(gen.spec.ExcludeSplitsJSON(), &splits))
		assert.Empty(t, splits)
		assert.Equal(t, 1, logs.FilterMessage(defaultingMsg).Len())
	})

	t.Run("infer feature shape parameter", func(t *testing.T) {
		gen, err := New(Params{
			Statistics:        channel.New(artifact.ExampleStatistics),
			InferFeatureShape: true,
			ExcludeSplits:     []string{"eval"},
		})
		require.NoError(t, err)

		params := gen.Spec().ExecParameters()
		assert.Equal(t, true, params["infer_feature_shape"])
		assert.Equal(t, `["eval"]`, params["exclude_splits"])
	})

	t.Run("missing statistics channel", func(t *testing.T) {
		gen, err := New(Params{})
		assert.Nil(t, gen)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	})

	t.Run("wrong statistics channel type", func(t *testing.T) {
		gen, err := New(Params{
			Statistics: channel.New(artifact.Examples),
		})
		assert.Nil(t, gen)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	})
}

func TestFactory(t *testing.T) {
	require.True(t, registry.Has(TypeName))

	inputs := map[string]*channel.Channel{
		"statistics": channel.New(artifact.ExampleStatistics),
	}
	params := map[string]interface{}{
		"infer_feature_shape": true,
	}

	def, err := registry.Create(TypeName, inputs, params)
	require.NoError(t, err)
	assert.Equal(t, TypeName, def.Type())
	assert.Equal(t, true, def.Spec().ExecParameters()["infer_feature_shape"])
}
