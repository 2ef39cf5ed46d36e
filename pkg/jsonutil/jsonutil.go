// Package jsonutil provides the generic JSON serialization used to carry
// component parameters across the specification boundary. Values encoded
// here must be decodable by the execution engine, so encoding is plain
// JSON with no type extensions.
package jsonutil

import (
	"bytes"
	"strings"
	"sync"

	gojson "github.com/goccy/go-json"

	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// bufferPool reuses encode buffers across calls
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// Dumps serializes v to a JSON string.
func Dumps(v interface{}) (string, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()

	enc := gojson.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeSerialization, "failed to encode value to JSON")
	}

	// Encoder appends a trailing newline
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Loads decodes a JSON string into v.
func Loads(s string, v interface{}) error {
	if err := gojson.Unmarshal([]byte(s), v); err != nil {
		return errors.Wrap(err, errors.ErrorTypeSerialization, "failed to decode JSON value")
	}
	return nil
}

// DumpsIndent serializes v to indented JSON, for human-facing output.
func DumpsIndent(v interface{}) (string, error) {
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeSerialization, "failed to encode value to JSON")
	}
	return string(b), nil
}
