package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Move the arm to its safe home position",
	Args:  cobra.NoArgs,
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	ctrl, cleanup, err := openArm(cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ctrl.GoHome(ctx); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Arm at home position")
	return nil
}
