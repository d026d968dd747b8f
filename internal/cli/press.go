package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pressDepth  float64
	pressHoldMS int
	pressNoHome bool
)

var pressCmd = &cobra.Command{
	Use:   "press <button>",
	Short: "Press a taught button once",
	Long: `Press the button at the taught position with the given name: hover over
it, dip the wrist servo by the press depth, and return home.

Example:
  armpress press like
  armpress press like --depth 8 --hold-ms 750`,
	Args: cobra.ExactArgs(1),
	RunE: runPress,
}

func init() {
	pressCmd.Flags().Float64Var(&pressDepth, "depth", 0, "Press depth in degrees (0 uses config)")
	pressCmd.Flags().IntVar(&pressHoldMS, "hold-ms", 0, "How long to hold the press (0 uses config)")
	pressCmd.Flags().BoolVar(&pressNoHome, "no-home", false, "Stay at the button instead of returning home")
	rootCmd.AddCommand(pressCmd)
}

func runPress(cmd *cobra.Command, args []string) error {
	name := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	depth := cfg.Device.PressDepth
	if pressDepth > 0 {
		depth = pressDepth
	}
	hold := msDuration(cfg.Device.PressHoldMS)
	if pressHoldMS > 0 {
		hold = msDuration(pressHoldMS)
	}

	ctrl, cleanup, err := openArm(cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ctrl.PressButton(ctx, name, depth, hold, !pressNoHome); err != nil {
		return fmt.Errorf("failed to press %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pressed %s\n", name)
	return nil
}
