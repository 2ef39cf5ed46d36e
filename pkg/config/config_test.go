package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-ml/cadenza/pkg/errors"
)

func validFile() *PipelineFile {
	return &PipelineFile{
		Name: "taxi",
		Inputs: map[string]InputConfig{
			"raw_examples": {ArtifactType: "Examples"},
		},
		Components: []ComponentConfig{
			{ID: "stats", Type: "StatisticsGen", Inputs: map[string]string{"examples": "raw_examples"}},
		},
	}
}

func TestPipelineFileValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validFile().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		f := validFile()
		f.Name = ""
		err := f.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})

	t.Run("no components", func(t *testing.T) {
		f := validFile()
		f.Components = nil
		require.Error(t, f.Validate())
	})

	t.Run("component without id", func(t *testing.T) {
		f := validFile()
		f.Components[0].ID = ""
		require.Error(t, f.Validate())
	})

	t.Run("component without type", func(t *testing.T) {
		f := validFile()
		f.Components[0].Type = ""
		require.Error(t, f.Validate())
	})

	t.Run("duplicate component ids", func(t *testing.T) {
		f := validFile()
		f.Components = append(f.Components, f.Components[0])
		err := f.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
	})

	t.Run("input without artifact type", func(t *testing.T) {
		f := validFile()
		f.Inputs["raw_examples"] = InputConfig{}
		require.Error(t, f.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("env substitution", func(t *testing.T) {
		t.Setenv("PIPELINE_NAME", "taxi-prod")

		path := filepath.Join(t.TempDir(), "pipeline.yaml")
		content := `name: ${PIPELINE_NAME}
components:
  - id: stats
    type: StatisticsGen
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		var f PipelineFile
		require.NoError(t, Load(path, &f))
		assert.Equal(t, "taxi-prod", f.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		var f PipelineFile
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &f)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("components: ["), 0644))

		var f PipelineFile
		require.Error(t, Load(path, &f))
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")

	f := validFile()
	require.NoError(t, Save(path, f))

	var loaded PipelineFile
	require.NoError(t, Load(path, &loaded))
	assert.Equal(t, f.Name, loaded.Name)
	assert.Equal(t, f.Components, loaded.Components)
}
