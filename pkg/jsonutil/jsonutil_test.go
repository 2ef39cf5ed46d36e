package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumps(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"empty string slice", []string{}, "[]"},
		{"string slice", []string{"train", "eval"}, `["train","eval"]`},
		{"map", map[string]int{"buckets": 10}, `{"buckets":10}`},
		{"nil", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dumps(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoads(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		encoded, err := Dumps([]string{"eval"})
		require.NoError(t, err)

		var decoded []string
		require.NoError(t, Loads(encoded, &decoded))
		assert.Equal(t, []string{"eval"}, decoded)
	})

	t.Run("malformed input", func(t *testing.T) {
		var v map[string]interface{}
		require.Error(t, Loads("{", &v))
	})
}

func TestDumpsIndent(t *testing.T) {
	got, err := DumpsIndent(map[string]string{"name": "taxi"})
	require.NoError(t, err)
	assert.Contains(t, got, "\n  \"name\": \"taxi\"")
}
