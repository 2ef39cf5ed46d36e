package statisticsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component/registry"
)

func TestFactoryRegistration(t *testing.T) {
	require.True(t, registry.Has(TypeName))

	info, err := registry.GetComponentInfo(TypeName)
	require.NoError(t, err)
	assert.Equal(t, ExecutorName, info.Executor)
	assert.Equal(t, []string{StatisticsKey}, info.OutputKeys)
}

func TestFactory(t *testing.T) {
	t.Run("decodes file parameters", func(t *testing.T) {
		inputs := map[string]*channel.Channel{
			"examples": channel.New(artifact.Examples),
		}
		params := map[string]interface{}{
			"exclude_splits": []interface{}{"eval"},
			"stats_options": map[string]interface{}{
				"num_top_values": 25,
			},
		}

		def, err := registry.Create(TypeName, inputs, params)
		require.NoError(t, err)
		assert.Equal(t, TypeName, def.Type())

		execParams := def.Spec().ExecParameters()
		assert.Equal(t, `["eval"]`, execParams["exclude_splits"])
		assert.Contains(t, execParams["stats_options_json"], `"num_top_values":25`)
	})

	t.Run("rejects malformed exclude_splits", func(t *testing.T) {
		inputs := map[string]*channel.Channel{
			"examples": channel.New(artifact.Examples),
		}
		params := map[string]interface{}{
			"exclude_splits": "eval",
		}

		_, err := registry.Create(TypeName, inputs, params)
		require.Error(t, err)
	})
}
