package pipeline

import (
	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/jsonutil"
)

// definitionDoc is the JSON document handed to the execution engine
type definitionDoc struct {
	Name       string         `json:"name"`
	Components []componentDoc `json:"components"`
}

type componentDoc struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Executor   map[string]interface{} `json:"executor"`
	Inputs     map[string]channelDoc  `json:"inputs,omitempty"`
	Outputs    map[string]channelDoc  `json:"outputs"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

type channelDoc struct {
	ID           string `json:"id"`
	ArtifactType string `json:"artifact_type"`
	Producer     string `json:"producer,omitempty"`
}

// Render serializes the pipeline definition to indented JSON
func (p *Pipeline) Render() (string, error) {
	doc := definitionDoc{
		Name:       p.name,
		Components: make([]componentDoc, 0, len(p.components)),
	}

	for _, def := range p.components {
		doc.Components = append(doc.Components, componentDoc{
			ID:         def.ID(),
			Type:       def.Type(),
			Executor:   def.Executor().Encode(),
			Inputs:     channelDocs(def.Inputs()),
			Outputs:    channelDocs(def.Outputs()),
			Parameters: def.Spec().ExecParameters(),
		})
	}

	return jsonutil.DumpsIndent(doc)
}

func channelDocs(channels map[string]*channel.Channel) map[string]channelDoc {
	if len(channels) == 0 {
		return nil
	}
	docs := make(map[string]channelDoc, len(channels))
	for key, ch := range channels {
		docs[key] = channelDoc{
			ID:           ch.ID().String(),
			ArtifactType: string(ch.ArtifactType()),
			Producer:     ch.Producer(),
		}
	}
	return docs
}
