package cli

import (
	"github.com/spf13/cobra"

	"armpress/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "armpress",
	Short: "Button-press automation for the Hiwonder LeArm",
	Long: `Armpress drives a LeArm robot arm through taught positions to press
physical buttons and turn dials. Teach positions interactively, then run
single presses or a repeated sequence of actions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("armpress version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
