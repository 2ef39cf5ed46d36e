package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := New(ExampleStatistics)
	assert.Equal(t, ExampleStatistics, a.Type)
	assert.False(t, a.CreatedAt.IsZero())

	b := New(ExampleStatistics)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWithSplits(t *testing.T) {
	a := New(Examples).WithSplits("train", "eval")
	assert.Equal(t, []string{"train", "eval"}, a.SplitNames)
}

func TestSetProperty(t *testing.T) {
	a := New(Schema)
	a.SetProperty("version", 3)
	assert.Equal(t, 3, a.Properties["version"])
}
