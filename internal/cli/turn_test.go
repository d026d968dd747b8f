package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnCommandRequiresDialArg(t *testing.T) {
	assert.Equal(t, "turn <dial>", turnCmd.Use)

	assert.Error(t, turnCmd.Args(turnCmd, []string{}))
	assert.Error(t, turnCmd.Args(turnCmd, []string{"volume", "extra"}))
	assert.NoError(t, turnCmd.Args(turnCmd, []string{"volume"}))
}

func TestTurnCommandFlags(t *testing.T) {
	f := turnCmd.Flags().Lookup("turn-time-ms")
	require.NotNil(t, f)
	assert.Equal(t, "0", f.DefValue)

	f = turnCmd.Flags().Lookup("no-home")
	require.NotNil(t, f)
	assert.Equal(t, "false", f.DefValue)
}
