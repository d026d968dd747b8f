package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"armpress/internal/logging"
	"armpress/internal/teach"
)

var teachCmd = &cobra.Command{
	Use:   "teach <name>",
	Short: "Teach a new button position interactively",
	Long: `Teach a position by jogging individual servos with single keypresses
until the arm sits on the button, then saving the pose under the given name.

Keys: 1-6 select a servo, +/- nudge it, s saves, q cancels.

Example:
  armpress teach like`,
	Args: cobra.ExactArgs(1),
	RunE: runTeach,
}

func init() {
	rootCmd.AddCommand(teachCmd)
}

func runTeach(cmd *cobra.Command, args []string) error {
	return teachWith(cmd, func(ctx context.Context, session *teach.Session) (bool, error) {
		return session.Teach(ctx, args[0])
	})
}

// teachWith runs fn inside a raw-terminal teaching session against the
// connected arm.
func teachWith(cmd *cobra.Command, fn func(ctx context.Context, session *teach.Session) (bool, error)) error {
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

	terminal := teach.NewTerminal()
	if err := terminal.EnterRaw(); err != nil {
		// Teaching still works over a pipe; keys just arrive line-buffered.
		logging.Warn("failed to enter raw mode", "error", err)
	}
	defer func() { _ = terminal.ExitRaw() }()

	session := &teach.Session{
		In:         os.Stdin,
		Out:        cmd.OutOrStdout(),
		Controller: ctrl,
		Store:      store,
	}

	saved, err := fn(ctx, session)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved")
	}
	return nil
}
