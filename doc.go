// Package cadenza provides a toolkit for defining ML pipelines as
// declarative component graphs.
//
// A pipeline definition is built from component definitions. Each component
// translates typed construction arguments into an immutable spec record
// describing its input channels, output channels, and serialized execution
// parameters, bound to a named executor on the external execution engine.
// Definitions never move data: artifact contents, statistics computation,
// and scheduling all belong to the engine.
//
// # Quick Start
//
// Define statistics generation over an examples channel:
//
//	import (
//	    "github.com/cadenza-ml/cadenza/pkg/artifact"
//	    "github.com/cadenza-ml/cadenza/pkg/channel"
//	    "github.com/cadenza-ml/cadenza/pkg/components/statisticsgen"
//	    "github.com/cadenza-ml/cadenza/pkg/pipeline"
//	)
//
//	examples := channel.New(artifact.Examples)
//	statsGen, err := statisticsgen.New(statisticsgen.Params{Examples: examples})
//	if err != nil {
//	    return err
//	}
//
//	p, err := pipeline.New("my-pipeline", statsGen)
//	if err != nil {
//	    return err
//	}
//	spec, err := p.Render()
//
// The statistics produced at run time are exposed to downstream components
// through statsGen.Outputs()["statistics"].
//
// # Packages
//
//   - pkg/artifact: artifact types exchanged between components
//   - pkg/channel: typed channels connecting producers to consumers
//   - pkg/component: the base component abstraction and executor bindings
//   - pkg/component/registry: named component factories for file-driven assembly
//   - pkg/components/statisticsgen: feature statistics over example splits
//   - pkg/components/schemagen: schema inference from statistics
//   - pkg/stats: the statistics engine's serializable options surface
//   - pkg/pipeline: graph validation and engine-spec rendering
package cadenza
