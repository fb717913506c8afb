package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasFlag(t *testing.T) {
	t.Parallel()

	var g Gas
	require.NoError(t, g.Set("3000000"))
	assert.Equal(t, Gas(3_000_000), g)
	assert.Equal(t, "3000000", g.String())

	require.NoError(t, g.Set("0x5208"))
	assert.Equal(t, uint64(21000), g.Uint64())

	require.Error(t, g.Set("-5"))
	assert.Equal(t, "Gas", g.Type())
}
