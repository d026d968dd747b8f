package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armpress/internal/positions"
)

func TestListNoPositions(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	require.NoError(t, runList(listCmd, nil))
	assert.Equal(t, "No positions taught yet\n", buf.String())
}

func TestListPrintsSortedPositions(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	store := positions.NewStore(dir)
	require.NoError(t, store.Save("volume_open", positions.Pose{1: 30, 2: 100}))
	require.NoError(t, store.Save("like", positions.Pose{5: 84}))

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	require.NoError(t, runList(listCmd, nil))
	assert.Equal(t, "like: 5=84\nvolume_open: 1=30 2=100\n", buf.String())
}

func TestListCommandTakesNoArgs(t *testing.T) {
	assert.Error(t, listCmd.Args(listCmd, []string{"extra"}))
	assert.NoError(t, listCmd.Args(listCmd, nil))
}
