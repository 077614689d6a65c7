package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidbrain/webcli/pkg/topics"
)

func TestTopicsMarkdown(t *testing.T) {
	catalogue, err := topics.Parse([]byte(`
topics:
  - name: Go
    text: |-
      first
      second
  - name: Rust
    text: crabs
`))
	require.NoError(t, err)

	assert.Equal(t, "# Topics\n\n## Go\n\nfirst\n\nsecond\n\n## Rust\n\ncrabs\n\n", topicsMarkdown(catalogue))
}

func TestRenderTopics(t *testing.T) {
	out, err := renderTopics(topics.Default(), "notty", 80)
	require.NoError(t, err)
	for _, name := range topics.Default().Names() {
		assert.Contains(t, out, name)
	}
}

func TestTopicsCommand(t *testing.T) {
	testEnv(t)

	res := execute(t, "", "topics", "--width", "60")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Ultimate Frisbee")
	assert.Contains(t, res.stdout, "HAL? Is that you?")
}
