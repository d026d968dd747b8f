package cli

import (
	"context"

	"github.com/spf13/cobra"

	"armpress/internal/teach"
)

var teachDialCmd = &cobra.Command{
	Use:   "teach-dial <name>",
	Short: "Teach the three positions needed to turn a dial",
	Long: `Teach the open, closed and turned positions for a dial, saved as
<name>_open, <name>_closed and <name>_turned. All three are required before
'armpress turn <name>' can run.

Example:
  armpress teach-dial volume`,
	Args: cobra.ExactArgs(1),
	RunE: runTeachDial,
}

func init() {
	rootCmd.AddCommand(teachDialCmd)
}

func runTeachDial(cmd *cobra.Command, args []string) error {
	return teachWith(cmd, func(ctx context.Context, session *teach.Session) (bool, error) {
		return session.TeachDial(ctx, args[0])
	})
}
