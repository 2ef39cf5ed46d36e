package schemagen

import (
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/component/registry"
	"github.com/cadenza-ml/cadenza/pkg/errors"
)

func init() {
	_ = registry.Register(TypeName, factory)

	_ = registry.RegisterComponentInfo(&registry.ComponentInfo{
		Name:        TypeName,
		Description: "Infers a schema from example statistics",
		Executor:    ExecutorName,
		InputKeys:   []string{statisticsKey},
		OutputKeys:  []string{SchemaKey},
	})
}

// factory builds a SchemaGen definition from decoded configuration
func factory(inputs map[string]*channel.Channel, params map[string]interface{}) (component.Definition, error) {
	p := Params{
		Statistics: inputs[statisticsKey],
	}

	if raw, ok := params["infer_feature_shape"]; ok {
		infer, err := registry.Bool(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid infer_feature_shape parameter")
		}
		p.InferFeatureShape = infer
	}

	if raw, ok := params["exclude_splits"]; ok {
		splits, err := registry.StringSlice(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid exclude_splits parameter")
		}
		p.ExcludeSplits = splits
	}

	return New(p)
}
