package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ".armpress")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultRepetitions, cfg.Sequence.Repetitions)
	assert.Equal(t, DefaultDelayMS, cfg.Sequence.DelayMS)
	assert.True(t, cfg.Sequence.HaltOnFailure)
	assert.Equal(t, DefaultActions(), cfg.Sequence.Actions)
	assert.Equal(t, uint16(DefaultVendorID), cfg.Device.VendorID)
	assert.Equal(t, uint16(DefaultProductID), cfg.Device.ProductID)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
sequence:
  repetitions: 3
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Sequence.Repetitions)
	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultDelayMS, cfg.Sequence.DelayMS)
	assert.Len(t, cfg.Sequence.Actions, 3)
}

func TestLoadConfigFullFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
sequence:
  repetitions: 10
  delay_ms: 250
  halt_on_failure: false
  actions:
    - label: "Pressing play..."
      mode: press
      target: play
device:
  press_depth: 8
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Sequence.Repetitions)
	assert.Equal(t, 250, cfg.Sequence.DelayMS)
	assert.False(t, cfg.Sequence.HaltOnFailure)
	require.Len(t, cfg.Sequence.Actions, 1)
	assert.Equal(t, Action{Label: "Pressing play...", Mode: "press", Target: "play"}, cfg.Sequence.Actions[0])
	assert.Equal(t, 8.0, cfg.Device.PressDepth)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "sequence: [not a mapping")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "zero repetitions",
			mutate: func(c *Config) { c.Sequence.Repetitions = 0 },
			field:  "sequence.repetitions",
		},
		{
			name:   "negative delay",
			mutate: func(c *Config) { c.Sequence.DelayMS = -1 },
			field:  "sequence.delay_ms",
		},
		{
			name:   "no actions",
			mutate: func(c *Config) { c.Sequence.Actions = nil },
			field:  "sequence.actions",
		},
		{
			name:   "bad mode",
			mutate: func(c *Config) { c.Sequence.Actions[0].Mode = "poke" },
			field:  "sequence.actions[0].mode",
		},
		{
			name:   "empty target",
			mutate: func(c *Config) { c.Sequence.Actions[1].Target = "" },
			field:  "sequence.actions[1].target",
		},
		{
			name:   "empty label",
			mutate: func(c *Config) { c.Sequence.Actions[2].Label = "" },
			field:  "sequence.actions[2].label",
		},
		{
			name:   "zero vendor id",
			mutate: func(c *Config) { c.Device.VendorID = 0 },
			field:  "device.vendor_id",
		},
		{
			name:   "press depth too large",
			mutate: func(c *Config) { c.Device.PressDepth = 200 },
			field:  "device.press_depth",
		},
		{
			name:   "zero hold",
			mutate: func(c *Config) { c.Device.PressHoldMS = 0 },
			field:  "device.press_hold_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(&cfg)
			require.Error(t, err)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidateConfigDefaultsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, ValidateConfig(&cfg))
}

func TestDefaultActionsOrder(t *testing.T) {
	actions := DefaultActions()
	require.Len(t, actions, 3)
	assert.Equal(t, "volume", actions[0].Target)
	assert.Equal(t, ModeTurn, actions[0].Mode)
	assert.Equal(t, "like", actions[1].Target)
	assert.Equal(t, ModePress, actions[1].Mode)
	assert.Equal(t, "bass", actions[2].Target)
	assert.Equal(t, ModeTurn, actions[2].Mode)
}
