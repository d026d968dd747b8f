package cli

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armpress/internal/config"
	"armpress/internal/positions"
	"armpress/internal/runner"
)

// resetRunFlags restores run command flag variables to their defaults.
func resetRunFlags(t *testing.T) {
	t.Helper()
	prev := []any{runRepeat, runDelayMS, runContinueOnFailure, runProgram, runDryRun}
	runRepeat, runDelayMS, runContinueOnFailure, runProgram, runDryRun = 0, -1, false, "", false
	t.Cleanup(func() {
		runRepeat = prev[0].(int)
		runDelayMS = prev[1].(int)
		runContinueOnFailure = prev[2].(bool)
		runProgram = prev[3].(string)
		runDryRun = prev[4].(bool)
	})
}

func TestRunCommandFlags(t *testing.T) {
	for flag, def := range map[string]string{
		"repeat":              "0",
		"delay-ms":            "-1",
		"continue-on-failure": "false",
		"program":             "",
		"dry-run":             "false",
	} {
		f := runCmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s not registered", flag)
		assert.Equal(t, def, f.DefValue, "flag %s default", flag)
	}
}

func TestRunDryRunDefaultSequence(t *testing.T) {
	resetRunFlags(t)
	dir := t.TempDir()
	t.Chdir(dir)

	runDryRun = true

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runRun(runCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "Iteration 1 of 50")
	assert.Contains(t, out, "Turning volume...")
	assert.Contains(t, out, "Pressing like...")
	assert.Contains(t, out, "Turning bass...")
	assert.Contains(t, out, "Completed iteration 50")
	assert.Contains(t, out, "Sequence complete: 50 iterations, 150 action calls")

	// The run is recorded.
	runs, err := positions.NewStore(dir).LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 50, runs[0].Iterations)
	assert.Equal(t, 150, runs[0].Calls)
	assert.Equal(t, "completed", runs[0].Reason)
}

func TestRunDryRunRepeatOverride(t *testing.T) {
	resetRunFlags(t)
	t.Chdir(t.TempDir())

	runDryRun = true
	runRepeat = 2

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runRun(runCmd, nil))
	assert.Contains(t, buf.String(), "Iteration 2 of 2")
	assert.NotContains(t, buf.String(), "Iteration 3")
}

func TestRunExternalProgramFailureHalts(t *testing.T) {
	prog, lookErr := exec.LookPath("false")
	if lookErr != nil {
		t.Skip("false not available")
	}

	resetRunFlags(t)
	dir := t.TempDir()
	t.Chdir(dir)

	runProgram = prog
	runRepeat = 3
	runDelayMS = 0

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	err := runRun(runCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence stopped after 0 of 3 iterations")

	runs, loadErr := positions.NewStore(dir).LoadRuns()
	require.NoError(t, loadErr)
	require.Len(t, runs, 1)
	assert.Equal(t, "action failed", runs[0].Reason)
	assert.Equal(t, 1, runs[0].Calls)
}

func TestRunInvalidRepeatOverride(t *testing.T) {
	resetRunFlags(t)
	t.Chdir(t.TempDir())

	runDryRun = true
	runRepeat = -5

	// Negative overrides are ignored; config default applies. A zero
	// config value would be rejected by validation instead.
	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runRun(runCmd, nil))
	assert.Contains(t, buf.String(), "Iteration 1 of 50")
}

func TestActionsFromConfig(t *testing.T) {
	actions := actionsFromConfig(config.DefaultActions())

	require.Len(t, actions, 3)
	assert.Equal(t, runner.Action{Label: "Turning volume...", Mode: runner.ModeTurn, Target: "volume"}, actions[0])
	assert.Equal(t, runner.Action{Label: "Pressing like...", Mode: runner.ModePress, Target: "like"}, actions[1])
	assert.Equal(t, runner.Action{Label: "Turning bass...", Mode: runner.ModeTurn, Target: "bass"}, actions[2])
}
