// Package statisticsgen defines the StatisticsGen pipeline component.
//
// StatisticsGen computes feature statistics over each split of its input
// examples, for visualization and example validation. The computation runs
// on the external Beam-based execution engine using approximate algorithms
// that scale to large datasets; this package only translates construction
// arguments into the declarative spec record the engine consumes.
//
// Component outputs contain:
//   - "statistics": a channel of ExampleStatistics artifacts, one per
//     split of the input examples.
package statisticsgen

import (
	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/jsonutil"
	"github.com/cadenza-ml/cadenza/pkg/logger"
	"github.com/cadenza-ml/cadenza/pkg/stats"
)

const (
	// TypeName is the component type name
	TypeName = "StatisticsGen"
	// ExecutorName identifies the Beam executor bound to this component
	ExecutorName = "statistics_gen_executor"

	examplesKey = "examples"
	schemaKey   = "schema"

	// StatisticsKey is the single output key exposed by the component
	StatisticsKey = "statistics"
)

// Params holds the construction arguments for StatisticsGen
type Params struct {
	// Examples is the input examples channel. Required. The examples are
	// expected to contain at least a "train" and an "eval" split; that
	// requirement is enforced by the downstream executor, not here.
	Examples *channel.Channel

	// Schema is an optional schema channel the engine uses to
	// auto-configure statistics behavior when no explicit options are
	// supplied.
	Schema *channel.Channel

	// StatsOptions optionally configures the statistics engine. When
	// StatsOptions.Schema is set it takes precedence over the Schema
	// channel; the engine applies that precedence. Because the options
	// must be serialized into the spec record, any Slicers or Generators
	// set on them are dropped and will not be applied.
	StatsOptions *stats.Options

	// ExcludeSplits names splits for which statistics should not be
	// generated. Nil excludes no splits.
	ExcludeSplits []string
}

// Spec is the immutable record describing a StatisticsGen instance to the
// orchestration layer.
type Spec struct {
	examples         *channel.Channel
	schema           *channel.Channel
	statsOptionsJSON *string
	excludeSplits    string
	statistics       *channel.Channel
}

// ComponentType returns the component type name
func (s *Spec) ComponentType() string { return TypeName }

// Inputs returns the examples channel and, when supplied, the schema channel
func (s *Spec) Inputs() map[string]*channel.Channel {
	inputs := map[string]*channel.Channel{examplesKey: s.examples}
	if s.schema != nil {
		inputs[schemaKey] = s.schema
	}
	return inputs
}

// Outputs returns the statistics output channel
func (s *Spec) Outputs() map[string]*channel.Channel {
	return map[string]*channel.Channel{StatisticsKey: s.statistics}
}

// ExecParameters returns the serialized execution parameters
func (s *Spec) ExecParameters() map[string]interface{} {
	params := map[string]interface{}{
		"exclude_splits": s.excludeSplits,
	}
	if s.statsOptionsJSON != nil {
		params["stats_options_json"] = *s.statsOptionsJSON
	}
	return params
}

// Validate checks channel presence and artifact type agreement
func (s *Spec) Validate() error {
	if s.examples == nil {
		return errors.New(errors.ErrorTypeValidation, "examples channel is required")
	}
	if got := s.examples.ArtifactType(); got != artifact.Examples {
		return errors.New(errors.ErrorTypeValidation,
			"examples channel must carry Examples artifacts").WithDetail("artifact_type", got)
	}
	if s.schema != nil {
		if got := s.schema.ArtifactType(); got != artifact.Schema {
			return errors.New(errors.ErrorTypeValidation,
				"schema channel must carry Schema artifacts").WithDetail("artifact_type", got)
		}
	}
	return nil
}

// StatsOptionsJSON returns the serialized stats options, or nil when no
// options were supplied at construction
func (s *Spec) StatsOptionsJSON() *string { return s.statsOptionsJSON }

// ExcludeSplitsJSON returns the serialized exclude-splits list
func (s *Spec) ExcludeSplitsJSON() string { return s.excludeSplits }

// StatisticsGen is a constructed StatisticsGen component definition
type StatisticsGen struct {
	*component.BaseComponent
	spec *Spec
}

// New constructs a StatisticsGen component definition.
//
// Construction is a single translation step: default and serialize the
// arguments, create the statistics output channel, and register the
// resulting spec record with the base component layer under the Beam
// executor binding. No validation beyond the base layer's channel checks
// happens here; malformed split names and the train/eval requirement are
// caught downstream by the execution engine.
func New(p Params) (*StatisticsGen, error) {
	excludeSplits := p.ExcludeSplits
	if excludeSplits == nil {
		excludeSplits = []string{}
		logger.Info("excluding no splits because exclude_splits is not set",
			zap.String("component", TypeName))
	}

	statistics := channel.New(artifact.ExampleStatistics)

	// Serialization is the options object's own concern; the component
	// never reconstructs the encoding itself.
	var statsOptionsJSON *string
	if p.StatsOptions != nil {
		encoded, err := p.StatsOptions.ToJSON()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeSerialization,
				"failed to serialize stats options")
		}
		statsOptionsJSON = &encoded
	}

	excludeSplitsJSON, err := jsonutil.Dumps(excludeSplits)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization,
			"failed to serialize exclude_splits")
	}

	spec := &Spec{
		examples:         p.Examples,
		schema:           p.Schema,
		statsOptionsJSON: statsOptionsJSON,
		excludeSplits:    excludeSplitsJSON,
		statistics:       statistics,
	}

	base, err := component.New(spec, component.NewBeamExecutorSpec(ExecutorName))
	if err != nil {
		return nil, err
	}

	return &StatisticsGen{BaseComponent: base, spec: spec}, nil
}

// StatisticsChannel returns the output statistics channel
func (c *StatisticsGen) StatisticsChannel() *channel.Channel {
	return c.spec.statistics
}
