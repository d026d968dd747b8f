package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultRepetitions = 50
	DefaultDelayMS     = 1000
	DefaultPressDepth  = 6.0
	DefaultPressHoldMS = 500
	DefaultTurnTimeMS  = 1000
	DefaultMoveTimeMS  = 1000

	// Hiwonder LeArm USB identity.
	DefaultVendorID  = 0x0483
	DefaultProductID = 0x5750
)

// DefaultActions returns the built-in three-action sequence.
func DefaultActions() []Action {
	return []Action{
		{Label: "Turning volume...", Mode: ModeTurn, Target: "volume"},
		{Label: "Pressing like...", Mode: ModePress, Target: "like"},
		{Label: "Turning bass...", Mode: ModeTurn, Target: "bass"},
	}
}

// DefaultSequence returns a sequence with sensible default values.
func DefaultSequence() Sequence {
	return Sequence{
		Repetitions:   DefaultRepetitions,
		DelayMS:       DefaultDelayMS,
		HaltOnFailure: true,
		Actions:       DefaultActions(),
	}
}

// DefaultDevice returns a device config with sensible default values.
func DefaultDevice() Device {
	return Device{
		VendorID:    DefaultVendorID,
		ProductID:   DefaultProductID,
		PressDepth:  DefaultPressDepth,
		PressHoldMS: DefaultPressHoldMS,
		TurnTimeMS:  DefaultTurnTimeMS,
		MoveTimeMS:  DefaultMoveTimeMS,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Sequence: DefaultSequence(),
		Device:   DefaultDevice(),
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses .armpress/config.yaml from the given base path.
// If the file doesn't exist, returns default config. Applies defaults for any
// missing fields.
func LoadConfig(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, ".armpress", "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if err := ValidateSequence(&cfg.Sequence); err != nil {
		return err
	}
	return ValidateDevice(&cfg.Device)
}

// ValidateSequence checks that sequence values are valid.
func ValidateSequence(seq *Sequence) error {
	if seq.Repetitions <= 0 {
		return ValidationError{Field: "sequence.repetitions", Message: "must be positive"}
	}
	if seq.DelayMS < 0 {
		return ValidationError{Field: "sequence.delay_ms", Message: "must not be negative"}
	}
	if len(seq.Actions) == 0 {
		return ValidationError{Field: "sequence.actions", Message: "must not be empty"}
	}
	for i, a := range seq.Actions {
		field := fmt.Sprintf("sequence.actions[%d]", i)
		if a.Mode != ModeTurn && a.Mode != ModePress {
			return ValidationError{Field: field + ".mode", Message: "must be turn or press"}
		}
		if a.Target == "" {
			return ValidationError{Field: field + ".target", Message: "must not be empty"}
		}
		if a.Label == "" {
			return ValidationError{Field: field + ".label", Message: "must not be empty"}
		}
	}
	return nil
}

// ValidateDevice checks that device values are valid.
func ValidateDevice(dev *Device) error {
	if dev.VendorID == 0 {
		return ValidationError{Field: "device.vendor_id", Message: "must not be zero"}
	}
	if dev.ProductID == 0 {
		return ValidationError{Field: "device.product_id", Message: "must not be zero"}
	}
	if dev.PressDepth <= 0 || dev.PressDepth >= 180 {
		return ValidationError{Field: "device.press_depth", Message: "must be between 0 and 180 degrees"}
	}
	if dev.PressHoldMS <= 0 {
		return ValidationError{Field: "device.press_hold_ms", Message: "must be positive"}
	}
	if dev.TurnTimeMS <= 0 {
		return ValidationError{Field: "device.turn_time_ms", Message: "must be positive"}
	}
	if dev.MoveTimeMS <= 0 {
		return ValidationError{Field: "device.move_time_ms", Message: "must be positive"}
	}
	return nil
}
