package pipeline

import (
	"fmt"
	"strings"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/component/registry"
	"github.com/cadenza-ml/cadenza/pkg/config"
	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// FromFile loads a pipeline definition file and assembles it through the
// component registry
func FromFile(path string) (*Pipeline, error) {
	var file config.PipelineFile
	if err := config.Load(path, &file); err != nil {
		return nil, err
	}
	return FromConfig(&file)
}

// FromConfig assembles a pipeline from a decoded definition file.
// Components are created in file order; an input reference of the form
// "<component id>.<output key>" must point at a component declared earlier
// in the file. Bare references name external inputs.
func FromConfig(file *config.PipelineFile) (*Pipeline, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	// External input channels, keyed by reference name
	channels := make(map[string]*channel.Channel, len(file.Inputs))
	for name, in := range file.Inputs {
		channels[name] = channel.New(artifact.Type(in.ArtifactType))
	}

	defs := make([]component.Definition, 0, len(file.Components))
	byConfigID := make(map[string]component.Definition, len(file.Components))

	for _, cc := range file.Components {
		inputs := make(map[string]*channel.Channel, len(cc.Inputs))
		for key, ref := range cc.Inputs {
			ch, err := resolveRef(ref, channels, byConfigID)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeConfig,
					fmt.Sprintf("component %s input %q", cc.ID, key))
			}
			inputs[key] = ch
		}

		def, err := registry.Create(cc.Type, inputs, cc.Params)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig,
				fmt.Sprintf("component %s", cc.ID))
		}

		defs = append(defs, def)
		byConfigID[cc.ID] = def
	}

	return New(file.Name, defs...)
}

// resolveRef resolves a channel reference to a channel. A reference is
// either an external input name or "<component id>.<output key>".
func resolveRef(ref string, channels map[string]*channel.Channel, byConfigID map[string]component.Definition) (*channel.Channel, error) {
	if id, key, found := strings.Cut(ref, "."); found {
		def, ok := byConfigID[id]
		if !ok {
			return nil, errors.New(errors.ErrorTypeNotFound,
				fmt.Sprintf("reference %q: component %s is not declared earlier in the file", ref, id))
		}
		ch, ok := def.Outputs()[key]
		if !ok {
			return nil, errors.New(errors.ErrorTypeNotFound,
				fmt.Sprintf("reference %q: component %s has no output %q", ref, id, key))
		}
		return ch, nil
	}

	ch, ok := channels[ref]
	if !ok {
		return nil, errors.New(errors.ErrorTypeNotFound,
			fmt.Sprintf("reference %q does not name a declared input", ref))
	}
	return ch, nil
}
