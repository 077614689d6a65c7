package tui

import (
	"testing"

	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrange(t *testing.T) {
	dims := arrange(80, 24)

	require.Contains(t, dims, ViewTerminal)
	require.Contains(t, dims, ViewStatus)
	assert.Equal(t, boxlayout.Dimensions{X0: 0, X1: 79, Y0: 0, Y1: 22}, dims[ViewTerminal])
	assert.Equal(t, boxlayout.Dimensions{X0: 0, X1: 79, Y0: 23, Y1: 23}, dims[ViewStatus])
}
