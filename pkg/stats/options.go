// Package stats exposes the configuration surface of the external
// statistics engine. The engine itself (approximate histograms, quantile
// sketches, top-k estimation over example splits) is an opaque collaborator;
// only Options crosses the definition boundary, and only its declarative
// subset survives serialization.
package stats

import (
	gojson "github.com/goccy/go-json"

	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// SlicerFunc assigns an example to a named slice before statistics are
// computed. Slicers are executable and cannot be serialized; see
// Options.ToJSON.
type SlicerFunc func(example map[string]interface{}) (slice string, ok bool)

// Generator computes custom statistics beyond the engine's built-ins.
// Like slicers, generators are executable and do not survive serialization.
type Generator interface {
	// Name identifies the generator in engine output
	Name() string
}

// Schema is an inline feature schema. When set on Options it takes
// precedence over any schema channel supplied to a component; that
// precedence is applied by the execution engine, not at definition time.
type Schema struct {
	Features []Feature `json:"features,omitempty"`
}

// Feature describes a single feature in an inline schema
type Feature struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// Options configures statistics computation.
//
// The zero value asks the engine for its defaults. Options is divided into
// a declarative subset, which round-trips through ToJSON/FromJSON, and
// executable members (Slicers, Generators), which are silently dropped
// during serialization. This lossiness is inherent to the specification
// boundary: spec records must be transport-safe, and function values are
// not. Callers that set Slicers or Generators on a component's Options will
// not see them applied by the engine.
type Options struct {
	// Schema is an inline schema overriding the component's schema channel
	Schema *Schema `json:"schema,omitempty"`

	// NumHistogramBuckets sets the bucket count for standard histograms
	NumHistogramBuckets int `json:"num_histogram_buckets,omitempty"`
	// NumQuantilesHistogramBuckets sets the bucket count for quantile histograms
	NumQuantilesHistogramBuckets int `json:"num_quantiles_histogram_buckets,omitempty"`
	// NumRankHistogramBuckets sets the bucket count for rank histograms
	NumRankHistogramBuckets int `json:"num_rank_histogram_buckets,omitempty"`
	// NumTopValues sets how many most-frequent values to report per feature
	NumTopValues int `json:"num_top_values,omitempty"`
	// SampleRate samples examples before computation (0 < rate <= 1; 0 means no sampling)
	SampleRate float64 `json:"sample_rate,omitempty"`
	// FeatureAllowlist restricts computation to the named features
	FeatureAllowlist []string `json:"feature_allowlist,omitempty"`
	// EnableSemanticDomainStats enables natural-language/image domain statistics
	EnableSemanticDomainStats bool `json:"enable_semantic_domain_stats,omitempty"`

	// Slicers are dropped during serialization
	Slicers []SlicerFunc `json:"-"`
	// Generators are dropped during serialization
	Generators []Generator `json:"-"`
}

// ToJSON serializes the declarative subset of the options to a string
// decodable by the execution engine. Slicers and Generators are dropped;
// decoding the result yields options with both unset.
func (o *Options) ToJSON() (string, error) {
	b, err := gojson.Marshal(o)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeSerialization, "failed to serialize stats options")
	}
	return string(b), nil
}

// FromJSON decodes options previously produced by ToJSON. The result never
// carries slicers or generators, regardless of what the encoding side set.
func FromJSON(s string) (*Options, error) {
	var o Options
	if err := gojson.Unmarshal([]byte(s), &o); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "failed to decode stats options")
	}
	return &o, nil
}
