package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sequence runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, _, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	runs, err := store.LoadRuns()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(out, "%s  %d/%d iterations  %d calls  %s  (%s)\n",
			r.StartedAt.Local().Format(time.DateTime),
			r.Iterations, r.Repetitions, r.Calls, r.Reason, r.ID)
	}
	return nil
}
