package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List taught positions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	poses, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(poses) == 0 {
		fmt.Fprintln(out, "No positions taught yet")
		return nil
	}

	names := make([]string, 0, len(poses))
	for name := range poses {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pose := poses[name]
		ids := make([]int, 0, len(pose))
		for id := range pose {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		fmt.Fprintf(out, "%s:", name)
		for _, id := range ids {
			fmt.Fprintf(out, " %d=%.0f", id, pose[id])
		}
		fmt.Fprintln(out)
	}
	return nil
}
