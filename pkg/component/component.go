// Package component provides the base abstraction shared by all pipeline
// component definitions. Concrete components build an immutable Spec record
// describing their inputs, outputs and execution parameters, then delegate
// to New for validation and registration. The base layer owns the checks a
// definition cannot get wrong on its own: nil specs, nil executor bindings
// and channel type mismatches all surface here.
package component

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/logger"
)

// Spec describes a component's inputs, outputs and execution parameters.
// Implementations are immutable records constructed once at pipeline
// definition time; the orchestration layer retains them for the lifetime
// of the pipeline definition.
type Spec interface {
	// ComponentType returns the component type name (e.g. "StatisticsGen")
	ComponentType() string
	// Inputs returns the input channels keyed by input name
	Inputs() map[string]*channel.Channel
	// Outputs returns the output channels keyed by output name
	Outputs() map[string]*channel.Channel
	// ExecParameters returns the transport-safe execution parameters.
	// Values must be JSON-encodable; executable behavior cannot cross
	// this boundary.
	ExecParameters() map[string]interface{}
	// Validate checks channel presence and artifact type agreement
	Validate() error
}

// Definition is implemented by every registered component definition
type Definition interface {
	ID() string
	Type() string
	Spec() Spec
	Executor() ExecutorSpec
	Inputs() map[string]*channel.Channel
	Outputs() map[string]*channel.Channel
}

// BaseComponent carries the validated spec record and executor binding for
// a component definition. Concrete components embed it and delegate
// construction to New rather than duplicating registration logic.
type BaseComponent struct {
	id       string
	spec     Spec
	executor ExecutorSpec
	logger   *zap.Logger
}

// New validates the spec record and binds it to an executor. It is the
// single registration step all component definitions share.
//
// Validation failures from the spec are wrapped as validation errors;
// definitions themselves raise no errors beyond what propagates from here
// and from parameter serialization.
func New(spec Spec, executor ExecutorSpec) (*BaseComponent, error) {
	if spec == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "component spec cannot be nil")
	}
	if executor == nil {
		return nil, errors.New(errors.ErrorTypeValidation,
			fmt.Sprintf("%s component requires an executor binding", spec.ComponentType()))
	}

	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation,
			fmt.Sprintf("invalid %s spec", spec.ComponentType()))
	}

	id := fmt.Sprintf("%s-%s", spec.ComponentType(), uuid.NewString()[:8])

	bc := &BaseComponent{
		id:       id,
		spec:     spec,
		executor: executor,
		logger:   logger.Get().With(zap.String("component", id)),
	}

	// Claim ownership of the output channels so the pipeline layer can
	// resolve producer/consumer edges.
	for name, ch := range spec.Outputs() {
		if ch == nil {
			return nil, errors.New(errors.ErrorTypeValidation,
				fmt.Sprintf("%s output channel %q is nil", spec.ComponentType(), name))
		}
		if err := ch.SetProducer(id); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation,
				fmt.Sprintf("%s output channel %q", spec.ComponentType(), name))
		}
	}

	return bc, nil
}

// ID returns the unique component instance ID
func (bc *BaseComponent) ID() string {
	return bc.id
}

// Type returns the component type name
func (bc *BaseComponent) Type() string {
	return bc.spec.ComponentType()
}

// Spec returns the component's spec record
func (bc *BaseComponent) Spec() Spec {
	return bc.spec
}

// Executor returns the component's executor binding
func (bc *BaseComponent) Executor() ExecutorSpec {
	return bc.executor
}

// Inputs returns the input channels declared by the spec
func (bc *BaseComponent) Inputs() map[string]*channel.Channel {
	return bc.spec.Inputs()
}

// Outputs returns the output channels declared by the spec
func (bc *BaseComponent) Outputs() map[string]*channel.Channel {
	return bc.spec.Outputs()
}
