package statisticsgen

import (
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/component/registry"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/jsonutil"
	"github.com/cadenza-ml/cadenza/pkg/stats"
)

func init() {
	_ = registry.Register(TypeName, factory)

	_ = registry.RegisterComponentInfo(&registry.ComponentInfo{
		Name:        TypeName,
		Description: "Computes per-split feature statistics over example data",
		Executor:    ExecutorName,
		InputKeys:   []string{examplesKey, schemaKey},
		OutputKeys:  []string{StatisticsKey},
	})
}

// factory builds a StatisticsGen definition from decoded configuration
func factory(inputs map[string]*channel.Channel, params map[string]interface{}) (component.Definition, error) {
	p := Params{
		Examples: inputs[examplesKey],
		Schema:   inputs[schemaKey],
	}

	if raw, ok := params["exclude_splits"]; ok {
		splits, err := registry.StringSlice(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid exclude_splits parameter")
		}
		p.ExcludeSplits = splits
	}

	if raw, ok := params["stats_options"]; ok {
		encoded, err := jsonutil.Dumps(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid stats_options parameter")
		}
		opts, err := stats.FromJSON(encoded)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid stats_options parameter")
		}
		p.StatsOptions = opts
	}

	return New(p)
}
