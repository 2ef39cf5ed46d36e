// Package artifact defines the artifact types exchanged between pipeline
// components. An artifact is a unit of data produced by one component and
// consumed by others; its Type tag is what the orchestration layer uses to
// check channel compatibility at definition time.
package artifact

import (
	"time"

	"github.com/google/uuid"
)

// Type tags a class of artifacts
type Type string

const (
	// Examples holds raw example data organized into named splits
	Examples Type = "Examples"
	// Schema describes the expected shape and domain of example features
	Schema Type = "Schema"
	// ExampleStatistics holds per-split feature statistics computed over examples
	ExampleStatistics Type = "ExampleStatistics"
	// Model holds a trained model
	Model Type = "Model"
	// TransformGraph holds a preprocessing graph applied to examples
	TransformGraph Type = "TransformGraph"
)

// Artifact is a single materialized value flowing between components.
// Component definitions never inspect artifact contents; only the execution
// engine reads and writes the data behind URI.
type Artifact struct {
	ID         uuid.UUID              `json:"id"`
	Type       Type                   `json:"type"`
	URI        string                 `json:"uri,omitempty"`
	SplitNames []string               `json:"split_names,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// New creates an artifact of the given type
func New(t Type) *Artifact {
	return &Artifact{
		ID:        uuid.New(),
		Type:      t,
		CreatedAt: time.Now().UTC(),
	}
}

// WithSplits sets the split names on the artifact
func (a *Artifact) WithSplits(splits ...string) *Artifact {
	a.SplitNames = splits
	return a
}

// SetProperty sets a custom property on the artifact
func (a *Artifact) SetProperty(key string, value interface{}) {
	if a.Properties == nil {
		a.Properties = make(map[string]interface{})
	}
	a.Properties[key] = value
}
