package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"armpress/internal/config"
	"armpress/internal/logging"
	"armpress/internal/positions"
	"armpress/internal/runner"
)

var (
	runRepeat            int
	runDelayMS           int
	runContinueOnFailure bool
	runProgram           string
	runDryRun            bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured button/dial sequence",
	Long: `Run the action sequence from .armpress/config.yaml for the configured
number of repetitions (default 50), printing progress for every action and
iteration. By default actions execute on the connected arm; --program hands
each action to an external program instead, and --dry-run only prints.

Example:
  armpress run
  armpress run --repeat 3 --continue-on-failure
  armpress run --program ./press-tool --repeat 10`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runRepeat, "repeat", 0, "Override the configured repetition count")
	runCmd.Flags().IntVar(&runDelayMS, "delay-ms", -1, "Override the configured delay between actions")
	runCmd.Flags().BoolVar(&runContinueOnFailure, "continue-on-failure", false, "Skip failed iterations instead of halting")
	runCmd.Flags().StringVar(&runProgram, "program", "", "Invoke this external program instead of the arm")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the sequence without invoking any action")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	seq := cfg.Sequence
	if runRepeat > 0 {
		seq.Repetitions = runRepeat
	}
	if runDelayMS >= 0 {
		seq.DelayMS = runDelayMS
	}
	if runContinueOnFailure {
		seq.HaltOnFailure = false
	}
	if err := config.ValidateSequence(&seq); err != nil {
		return err
	}

	var invoker runner.ActionInvoker
	delay := msDuration(seq.DelayMS)

	switch {
	case runDryRun:
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: actions are printed, not invoked.")
		invoker = runner.NopInvoker{}
		delay = 0

	case runProgram != "":
		invoker = &runner.ExecInvoker{Program: runProgram}

	default:
		ctrl, cleanup, err := openArm(cfg, store)
		if err != nil {
			return err
		}
		defer cleanup()
		defer func() {
			// Leave the arm in its safe position whatever happened.
			if err := ctrl.GoHome(context.Background()); err != nil {
				logging.Warn("failed to return home", "error", err)
			}
		}()

		invoker = &runner.ArmInvoker{
			Controller: ctrl,
			PressDepth: cfg.Device.PressDepth,
			PressHold:  msDuration(cfg.Device.PressHoldMS),
			TurnTime:   msDuration(cfg.Device.TurnTimeMS),
		}
	}

	rec := positions.NewRunRecord(seq.Repetitions)

	r := runner.New(runner.Options{
		Invoker:       invoker,
		Out:           cmd.OutOrStdout(),
		Repetitions:   seq.Repetitions,
		Actions:       actionsFromConfig(seq.Actions),
		Delay:         delay,
		HaltOnFailure: seq.HaltOnFailure,
	})
	res := r.Run(ctx)

	rec.Iterations = res.Iterations
	rec.Calls = res.Calls
	rec.Reason = res.Reason.String()
	if err := store.AppendRun(rec); err != nil {
		logging.Warn("failed to record run history", "error", err)
	}

	if res.Err != nil {
		return fmt.Errorf("sequence stopped after %d of %d iterations: %w",
			res.Iterations, seq.Repetitions, res.Err)
	}
	return nil
}

// actionsFromConfig converts configured actions to runner actions.
func actionsFromConfig(actions []config.Action) []runner.Action {
	out := make([]runner.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, runner.Action{
			Label:  a.Label,
			Mode:   runner.Mode(a.Mode),
			Target: a.Target,
		})
	}
	return out
}
