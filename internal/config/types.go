package config

// Action describes one entry in the automation sequence: a progress label
// plus the mode and target handed to the action invoker.
type Action struct {
	Label  string `yaml:"label"`
	Mode   string `yaml:"mode"`
	Target string `yaml:"target"`
}

// Action mode values.
const (
	ModeTurn  = "turn"
	ModePress = "press"
)

// Sequence defines the repeated button/dial sequence driven by `armpress run`.
type Sequence struct {
	Repetitions   int      `yaml:"repetitions"`
	DelayMS       int      `yaml:"delay_ms"`
	HaltOnFailure bool     `yaml:"halt_on_failure"`
	Actions       []Action `yaml:"actions"`
}

// Device holds the USB identity of the arm's servo controller and the
// movement tuning used by press and dial operations.
type Device struct {
	VendorID    uint16  `yaml:"vendor_id"`
	ProductID   uint16  `yaml:"product_id"`
	PressDepth  float64 `yaml:"press_depth"`
	PressHoldMS int     `yaml:"press_hold_ms"`
	TurnTimeMS  int     `yaml:"turn_time_ms"`
	MoveTimeMS  int     `yaml:"move_time_ms"`
}

// Config represents the .armpress/config.yaml file.
type Config struct {
	Sequence Sequence `yaml:"sequence"`
	Device   Device   `yaml:"device"`
}
