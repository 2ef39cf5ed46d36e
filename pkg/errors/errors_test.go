package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeValidation, "examples channel is required")
	assert.Equal(t, "validation: examples channel is required", err.Error())
	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeConfig))
	assert.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := fmt.Errorf("disk unavailable")
		err := Wrap(cause, ErrorTypeConfig, "failed to read config file")
		assert.Contains(t, err.Error(), "disk unavailable")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrorTypeConfig, "ignored"))
	})

	t.Run("preserves inner stack", func(t *testing.T) {
		inner := New(ErrorTypeValidation, "bad channel type")
		outer := Wrap(inner, ErrorTypeValidation, "invalid StatisticsGen spec")
		assert.Equal(t, inner.Stack, outer.Stack)
		assert.True(t, IsType(outer, ErrorTypeValidation))
	})
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeValidation, "artifact type mismatch").
		WithDetail("artifact_type", "Model").
		WithDetail("expected", "Examples")

	require.Len(t, err.Details, 2)
	assert.Equal(t, "Model", err.Details["artifact_type"])
}

func TestIsTypeForeignError(t *testing.T) {
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeInternal))
}
