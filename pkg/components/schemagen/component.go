// Package schemagen defines the SchemaGen pipeline component.
//
// SchemaGen infers a schema from example statistics produced by
// StatisticsGen. The inference runs on the external Beam-based execution
// engine; this package builds the declarative spec record describing it.
//
// Component outputs contain:
//   - "schema": a channel of Schema artifacts.
package schemagen

import (
	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/jsonutil"
	"github.com/cadenza-ml/cadenza/pkg/logger"
)

const (
	// TypeName is the component type name
	TypeName = "SchemaGen"
	// ExecutorName identifies the Beam executor bound to this component
	ExecutorName = "schema_gen_executor"

	statisticsKey = "statistics"

	// SchemaKey is the single output key exposed by the component
	SchemaKey = "schema"
)

// Params holds the construction arguments for SchemaGen
type Params struct {
	// Statistics is the input example-statistics channel. Required.
	Statistics *channel.Channel

	// InferFeatureShape asks the engine to infer feature shapes from the
	// statistics rather than treating all features as variable-length.
	InferFeatureShape bool

	// ExcludeSplits names splits whose statistics should not contribute
	// to schema inference. Nil excludes no splits.
	ExcludeSplits []string
}

// Spec is the immutable record describing a SchemaGen instance to the
// orchestration layer.
type Spec struct {
	statistics        *channel.Channel
	inferFeatureShape bool
	excludeSplits     string
	schema            *channel.Channel
}

// ComponentType returns the component type name
func (s *Spec) ComponentType() string { return TypeName }

// Inputs returns the statistics input channel
func (s *Spec) Inputs() map[string]*channel.Channel {
	return map[string]*channel.Channel{statisticsKey: s.statistics}
}

// Outputs returns the schema output channel
func (s *Spec) Outputs() map[string]*channel.Channel {
	return map[string]*channel.Channel{SchemaKey: s.schema}
}

// ExecParameters returns the serialized execution parameters
func (s *Spec) ExecParameters() map[string]interface{} {
	return map[string]interface{}{
		"infer_feature_shape": s.inferFeatureShape,
		"exclude_splits":      s.excludeSplits,
	}
}

// Validate checks channel presence and artifact type agreement
func (s *Spec) Validate() error {
	if s.statistics == nil {
		return errors.New(errors.ErrorTypeValidation, "statistics channel is required")
	}
	if got := s.statistics.ArtifactType(); got != artifact.ExampleStatistics {
		return errors.New(errors.ErrorTypeValidation,
			"statistics channel must carry ExampleStatistics artifacts").WithDetail("artifact_type", got)
	}
	return nil
}

// ExcludeSplitsJSON returns the serialized exclude-splits list
func (s *Spec) ExcludeSplitsJSON() string { return s.excludeSplits }

// SchemaGen is a constructed SchemaGen component definition
type SchemaGen struct {
	*component.BaseComponent
	spec *Spec
}

// New constructs a SchemaGen component definition
func New(p Params) (*SchemaGen, error) {
	excludeSplits := p.ExcludeSplits
	if excludeSplits == nil {
		excludeSplits = []string{}
		logger.Info("excluding no splits because exclude_splits is not set",
			zap.String("component", TypeName))
	}

	schema := channel.New(artifact.Schema)

	excludeSplitsJSON, err := jsonutil.Dumps(excludeSplits)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization,
			"failed to serialize exclude_splits")
	}

	spec := &Spec{
		statistics:        p.Statistics,
		inferFeatureShape: p.InferFeatureShape,
		excludeSplits:     excludeSplitsJSON,
		schema:            schema,
	}

	base, err := component.New(spec, component.NewBeamExecutorSpec(ExecutorName))
	if err != nil {
		return nil, err
	}

	return &SchemaGen{BaseComponent: base, spec: spec}, nil
}

// SchemaChannel returns the output schema channel
func (c *SchemaGen) SchemaChannel() *channel.Channel {
	return c.spec.schema
}
