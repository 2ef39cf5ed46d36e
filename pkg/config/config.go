// Package config provides configuration loading for Cadenza pipeline
// definition files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// PipelineFile is the YAML document describing a pipeline definition
type PipelineFile struct {
	// Name identifies the pipeline
	Name string `yaml:"name"`
	// Inputs declares the external channels feeding the pipeline,
	// keyed by reference name
	Inputs map[string]InputConfig `yaml:"inputs,omitempty"`
	// Components lists the component instances, in definition order
	Components []ComponentConfig `yaml:"components"`
}

// InputConfig declares an external input channel
type InputConfig struct {
	// ArtifactType names the artifact type carried by the channel
	ArtifactType string `yaml:"artifact_type"`
}

// ComponentConfig declares one component instance
type ComponentConfig struct {
	// ID is the file-local identifier other components reference
	ID string `yaml:"id"`
	// Type is the registered component type name
	Type string `yaml:"type"`
	// Inputs maps input keys to channel references: either an external
	// input name or "<component id>.<output key>"
	Inputs map[string]string `yaml:"inputs,omitempty"`
	// Params holds component-specific parameters
	Params map[string]interface{} `yaml:"params,omitempty"`
}

// Validate checks the structural requirements of the pipeline file
func (f *PipelineFile) Validate() error {
	if f.Name == "" {
		return errors.New(errors.ErrorTypeConfig, "pipeline name is required")
	}
	if len(f.Components) == 0 {
		return errors.New(errors.ErrorTypeConfig, "pipeline must declare at least one component")
	}

	seen := make(map[string]bool, len(f.Components))
	for i, c := range f.Components {
		if c.ID == "" {
			return errors.New(errors.ErrorTypeConfig,
				fmt.Sprintf("component at index %d is missing an id", i))
		}
		if c.Type == "" {
			return errors.New(errors.ErrorTypeConfig,
				fmt.Sprintf("component %s is missing a type", c.ID))
		}
		if seen[c.ID] {
			return errors.New(errors.ErrorTypeConflict,
				fmt.Sprintf("duplicate component id %s", c.ID))
		}
		seen[c.ID] = true
	}

	for name, in := range f.Inputs {
		if in.ArtifactType == "" {
			return errors.New(errors.ErrorTypeConfig,
				fmt.Sprintf("input %s is missing an artifact_type", name))
		}
	}

	return nil
}

// Load loads a configuration from a YAML file
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller and validated
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
	}

	// Substitute environment variables
	content := string(data)
	content = substituteEnvVars(content)

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML")
	}

	return nil
}

// Save saves a configuration to a YAML file
func Save(filePath string, config interface{}) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeSerialization, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file")
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
