package cli

import (
	"os"
	"time"

	"armpress/internal/arm"
	"armpress/internal/config"
	"armpress/internal/device"
	"armpress/internal/positions"
)

// loadEnvironment resolves the working directory, config and position store
// shared by every command.
func loadEnvironment() (cwd string, cfg *config.Config, store *positions.Store, err error) {
	cwd, err = os.Getwd()
	if err != nil {
		return "", nil, nil, err
	}
	cfg, err = config.LoadConfig(cwd)
	if err != nil {
		return "", nil, nil, err
	}
	return cwd, cfg, positions.NewStore(cwd), nil
}

// openArm connects to the configured device and wraps it in a controller.
// The returned cleanup closes the device.
func openArm(cfg *config.Config, store *positions.Store) (*arm.Controller, func(), error) {
	client, err := device.OpenHID(cfg.Device.VendorID, cfg.Device.ProductID)
	if err != nil {
		return nil, nil, err
	}

	ctrl := arm.NewWithOptions(arm.Options{
		Client:   client,
		Store:    store,
		MoveTime: msDuration(cfg.Device.MoveTimeMS),
	})
	return ctrl, func() { _ = client.Close() }, nil
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
