// Package pipeline assembles component definitions into a validated
// pipeline definition. Assembly resolves producer/consumer edges over
// shared channels, rejects malformed graphs, and renders the result to
// the JSON form handed to the external execution engine. Nothing here
// executes components; a Pipeline is a plan, not a run.
package pipeline

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/logger"
)

// Pipeline is a validated, topologically ordered set of component
// definitions
type Pipeline struct {
	name       string
	components []component.Definition
}

// New validates the component graph and returns a pipeline with its
// components in topological order. All validation problems are reported
// together rather than one at a time.
func New(name string, defs ...component.Definition) (*Pipeline, error) {
	var verr *multierror.Error

	if name == "" {
		verr = multierror.Append(verr, errors.New(errors.ErrorTypeConfig, "pipeline name is required"))
	}
	if len(defs) == 0 {
		verr = multierror.Append(verr, errors.New(errors.ErrorTypeConfig, "pipeline must contain at least one component"))
	}

	byID := make(map[string]component.Definition, len(defs))
	for _, def := range defs {
		if def == nil {
			verr = multierror.Append(verr, errors.New(errors.ErrorTypeValidation, "pipeline component cannot be nil"))
			continue
		}
		if _, dup := byID[def.ID()]; dup {
			verr = multierror.Append(verr, errors.New(errors.ErrorTypeConflict,
				fmt.Sprintf("duplicate component id %s", def.ID())))
			continue
		}
		byID[def.ID()] = def
	}

	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	ordered, err := sortComponents(defs, byID)
	if err != nil {
		return nil, err
	}

	logger.Info("pipeline defined",
		zap.String("pipeline", name),
		zap.Int("components", len(ordered)))

	return &Pipeline{
		name:       name,
		components: ordered,
	}, nil
}

// sortComponents orders components so every producer precedes its
// consumers. Channels without an in-pipeline producer are external inputs
// and impose no ordering. Preserves the caller's order among independent
// components.
func sortComponents(defs []component.Definition, byID map[string]component.Definition) ([]component.Definition, error) {
	// upstream[id] = set of in-pipeline component IDs it consumes from
	upstream := make(map[string]map[string]bool, len(defs))
	for _, def := range defs {
		deps := make(map[string]bool)
		for _, ch := range def.Inputs() {
			if ch == nil {
				continue
			}
			producer := ch.Producer()
			if producer == "" || producer == def.ID() {
				continue
			}
			if _, known := byID[producer]; known {
				deps[producer] = true
			}
		}
		upstream[def.ID()] = deps
	}

	ordered := make([]component.Definition, 0, len(defs))
	placed := make(map[string]bool, len(defs))

	for len(ordered) < len(defs) {
		progressed := false
		for _, def := range defs {
			if placed[def.ID()] {
				continue
			}
			ready := true
			for dep := range upstream[def.ID()] {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, def)
				placed[def.ID()] = true
				progressed = true
			}
		}
		if !progressed {
			var stuck *multierror.Error
			for _, def := range defs {
				if !placed[def.ID()] {
					stuck = multierror.Append(stuck, errors.New(errors.ErrorTypeValidation,
						fmt.Sprintf("component %s is part of a dependency cycle", def.ID())))
				}
			}
			return nil, stuck.ErrorOrNil()
		}
	}

	return ordered, nil
}

// Name returns the pipeline name
func (p *Pipeline) Name() string {
	return p.name
}

// Components returns the components in topological order
func (p *Pipeline) Components() []component.Definition {
	return p.components
}
