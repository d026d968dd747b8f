// Package runner drives a fixed, ordered sequence of named actions for a
// configured number of repetitions, with human-readable progress output.
// Actions are executed strictly in order and strictly synchronously; an
// iteration never overlaps the next.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"armpress/internal/logging"
)

// Mode selects how an action's target is operated.
type Mode string

// Action modes.
const (
	ModeTurn  Mode = "turn"
	ModePress Mode = "press"
)

// Action is one entry in the sequence: a display label plus the mode and
// target handed to the invoker.
type Action struct {
	Label  string
	Mode   Mode
	Target string
}

// ActionInvoker executes a single action. Implementations block until the
// action completes and return an error on failure.
type ActionInvoker interface {
	Invoke(ctx context.Context, mode Mode, target string) error
}

// ExitReason indicates why the runner stopped.
type ExitReason int

const (
	ReasonUnknown      ExitReason = iota
	ReasonCompleted               // All iterations ran
	ReasonActionFailed            // An action failed with halt-on-failure set
	ReasonCanceled                // Context canceled
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ReasonCompleted:
		return "completed"
	case ReasonActionFailed:
		return "action failed"
	case ReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a sequence run.
type Result struct {
	Reason     ExitReason
	Iterations int // fully completed iterations
	Calls      int // action invocations attempted
	Err        error
}

// Options holds configuration for creating a Runner.
type Options struct {
	Invoker       ActionInvoker       // nil defaults to NopInvoker (dry run)
	Out           io.Writer           // nil defaults to os.Stdout
	Repetitions   int                 // number of iterations; 0 runs nothing
	Actions       []Action            // executed in order each iteration
	Delay         time.Duration       // pause after each action
	HaltOnFailure bool                // stop the run on the first failed action
	Sleep         func(time.Duration) // Optional: defaults to time.Sleep
}

// Runner executes the configured sequence.
type Runner struct {
	invoker       ActionInvoker
	out           io.Writer
	repetitions   int
	actions       []Action
	delay         time.Duration
	haltOnFailure bool
	sleep         func(time.Duration)
}

const separator = "----------------------------------------"

// New creates a Runner from the given options.
func New(opts Options) *Runner {
	invoker := opts.Invoker
	if invoker == nil {
		invoker = NopInvoker{}
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Runner{
		invoker:       invoker,
		out:           out,
		repetitions:   opts.Repetitions,
		actions:       opts.Actions,
		delay:         opts.Delay,
		haltOnFailure: opts.HaltOnFailure,
		sleep:         sleep,
	}
}

// Run executes the sequence until all repetitions complete, an action fails
// with halt-on-failure set, or the context is canceled. Cancellation is
// checked between invocations; a running invocation is never interrupted
// mid-action.
func (r *Runner) Run(ctx context.Context) Result {
	res := Result{Reason: ReasonCompleted}

	for i := 1; i <= r.repetitions; i++ {
		if err := ctx.Err(); err != nil {
			res.Reason = ReasonCanceled
			res.Err = err
			break
		}

		fmt.Fprintf(r.out, "Iteration %d of %d\n", i, r.repetitions)

		completed, stop := r.runIteration(ctx, i, &res)
		if completed {
			res.Iterations++
			fmt.Fprintf(r.out, "Completed iteration %d\n", i)
			fmt.Fprintln(r.out, separator)
		}
		if stop {
			break
		}
	}

	r.printSummary(res)
	return res
}

// runIteration invokes every action once, in order. It reports whether the
// iteration completed and whether the run should stop.
func (r *Runner) runIteration(ctx context.Context, iteration int, res *Result) (completed, stop bool) {
	for _, a := range r.actions {
		if err := ctx.Err(); err != nil {
			res.Reason = ReasonCanceled
			res.Err = err
			return false, true
		}

		fmt.Fprintln(r.out, a.Label)

		res.Calls++
		if err := r.invoker.Invoke(ctx, a.Mode, a.Target); err != nil {
			logging.Error("action failed",
				"iteration", iteration, "mode", string(a.Mode), "target", a.Target, "error", err)

			if r.haltOnFailure {
				fmt.Fprintf(r.out, "Action failed: %v\n", err)
				res.Reason = ReasonActionFailed
				res.Err = err
				return false, true
			}

			// Skip the rest of this iteration and carry on.
			fmt.Fprintf(r.out, "Action failed, skipping rest of iteration %d: %v\n", iteration, err)
			return false, false
		}

		if r.delay > 0 {
			r.sleep(r.delay)
		}
	}
	return true, false
}

// printSummary emits the final summary line. It is printed however the run
// ended, so an aborted run still reports how far it got.
func (r *Runner) printSummary(res Result) {
	if res.Reason == ReasonCompleted {
		fmt.Fprintf(r.out, "Sequence complete: %d iterations, %d action calls\n",
			res.Iterations, res.Calls)
		return
	}
	fmt.Fprintf(r.out, "Sequence stopped (%s): %d of %d iterations completed, %d action calls\n",
		res.Reason, res.Iterations, r.repetitions, res.Calls)
}
