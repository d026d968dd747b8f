// Package device provides the transport to the LeArm's servo controller. It
// defines the Client interface used by the rest of armpress, the USB HID
// implementation speaking the Hiwonder servo protocol, and a recording mock
// for tests.
package device

import (
	"fmt"
	"time"

	"github.com/sstallion/go-hid"

	"armpress/internal/logging"
)

// Client defines the interface for servo controller operations.
type Client interface {
	// MoveServos commands the given servos to their target angles, moving
	// over the given duration. The call returns once the command has been
	// written and the controller has had time to accept it; it does not
	// wait for the physical movement to finish.
	MoveServos(moves []ServoMove, duration time.Duration) error

	// Close releases the device.
	Close() error
}

// writeSettle is how long to pause after each report so the controller's HID
// endpoint does not drop back-to-back commands.
const writeSettle = 50 * time.Millisecond

// HIDClient implements Client over a USB HID connection to the arm.
type HIDClient struct {
	dev    *hid.Device
	settle time.Duration
}

// OpenHID connects to the arm's servo controller by USB identity.
func OpenHID(vendorID, productID uint16) (*HIDClient, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize hidapi: %w", err)
	}

	dev, err := hid.OpenFirst(vendorID, productID)
	if err != nil {
		hid.Exit()
		return nil, fmt.Errorf("failed to open arm (vid 0x%04x, pid 0x%04x): %w", vendorID, productID, err)
	}

	if mfr, err := dev.GetMfrStr(); err == nil {
		product, _ := dev.GetProductStr()
		logging.Info("connected to arm", "manufacturer", mfr, "product", product)
	}

	if err := dev.SetNonblocking(true); err != nil {
		logging.Warn("failed to set non-blocking mode", "error", err)
	}

	return &HIDClient{dev: dev, settle: writeSettle}, nil
}

// MoveServos writes a servo move frame to the device.
func (c *HIDClient) MoveServos(moves []ServoMove, duration time.Duration) error {
	if len(moves) == 0 {
		return fmt.Errorf("no servo moves specified")
	}

	report := hidReport(servoMoveFrame(moves, duration))
	if _, err := c.dev.Write(report); err != nil {
		return fmt.Errorf("failed to write servo command: %w", err)
	}

	time.Sleep(c.settle)
	return nil
}

// Close closes the device and tears down hidapi.
func (c *HIDClient) Close() error {
	err := c.dev.Close()
	if exitErr := hid.Exit(); err == nil {
		err = exitErr
	}
	return err
}
