package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	turnTimeMS int
	turnNoHome bool
)

var turnCmd = &cobra.Command{
	Use:   "turn <dial>",
	Short: "Turn a taught dial once",
	Long: `Turn the dial with the given name using its three taught positions
(<dial>_open, <dial>_closed, <dial>_turned): approach with the gripper open,
grip, turn, release and return home.

Example:
  armpress turn volume
  armpress turn bass --turn-time-ms 1500`,
	Args: cobra.ExactArgs(1),
	RunE: runTurn,
}

func init() {
	turnCmd.Flags().IntVar(&turnTimeMS, "turn-time-ms", 0, "How long the turning movement takes (0 uses config)")
	turnCmd.Flags().BoolVar(&turnNoHome, "no-home", false, "Stay at the dial instead of returning home")
	rootCmd.AddCommand(turnCmd)
}

func runTurn(cmd *cobra.Command, args []string) error {
	name := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	turnTime := msDuration(cfg.Device.TurnTimeMS)
	if turnTimeMS > 0 {
		turnTime = msDuration(turnTimeMS)
	}

	ctrl, cleanup, err := openArm(cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ctrl.TurnDial(ctx, name, turnTime, !turnNoHome); err != nil {
		return fmt.Errorf("failed to turn %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Turned %s\n", name)
	return nil
}
