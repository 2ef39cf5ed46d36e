package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-ml/cadenza/pkg/components/schemagen"
	"github.com/cadenza-ml/cadenza/pkg/components/statisticsgen"
	"github.com/cadenza-ml/cadenza/pkg/config"
)

func taxiConfig() *config.PipelineFile {
	return &config.PipelineFile{
		Name: "taxi",
		Inputs: map[string]config.InputConfig{
			"raw_examples": {ArtifactType: "Examples"},
		},
		Components: []config.ComponentConfig{
			{
				ID:   "stats",
				Type: statisticsgen.TypeName,
				Inputs: map[string]string{
					"examples": "raw_examples",
				},
				Params: map[string]interface{}{
					"exclude_splits": []interface{}{"eval"},
				},
			},
			{
				ID:   "schema",
				Type: schemagen.TypeName,
				Inputs: map[string]string{
					"statistics": "stats.statistics",
				},
			},
		},
	}
}

func TestFromConfig(t *testing.T) {
	t.Run("assembles registered components", func(t *testing.T) {
		p, err := FromConfig(taxiConfig())
		require.NoError(t, err)
		require.Len(t, p.Components(), 2)
		assert.Equal(t, statisticsgen.TypeName, p.Components()[0].Type())
		assert.Equal(t, schemagen.TypeName, p.Components()[1].Type())
	})

	t.Run("unknown component type", func(t *testing.T) {
		cfg := taxiConfig()
		cfg.Components[0].Type = "Nonexistent"
		_, err := FromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("forward reference", func(t *testing.T) {
		cfg := taxiConfig()
		cfg.Components[0].Inputs["schema"] = "schema.schema"
		_, err := FromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not declared earlier")
	})

	t.Run("unknown output key", func(t *testing.T) {
		cfg := taxiConfig()
		cfg.Components[1].Inputs["statistics"] = "stats.samples"
		_, err := FromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no output")
	})

	t.Run("undeclared external input", func(t *testing.T) {
		cfg := taxiConfig()
		cfg.Components[0].Inputs["examples"] = "missing_input"
		_, err := FromConfig(cfg)
		require.Error(t, err)
	})

	t.Run("invalid file structure", func(t *testing.T) {
		_, err := FromConfig(&config.PipelineFile{Name: "empty"})
		require.Error(t, err)
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")

	content := `name: taxi
inputs:
  raw_examples:
    artifact_type: Examples
components:
  - id: stats
    type: StatisticsGen
    inputs:
      examples: raw_examples
    params:
      exclude_splits: ["eval"]
  - id: schema
    type: SchemaGen
    inputs:
      statistics: stats.statistics
    params:
      infer_feature_shape: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "taxi", p.Name())
	require.Len(t, p.Components(), 2)

	params := p.Components()[0].Spec().ExecParameters()
	assert.Equal(t, `["eval"]`, params["exclude_splits"])

	_, err = FromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
