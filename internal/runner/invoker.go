package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"armpress/internal/arm"
)

// InvocationError wraps a failed action invocation with the mode and target
// that failed.
type InvocationError struct {
	Mode   Mode
	Target string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoking %s %s: %v", e.Mode, e.Target, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NopInvoker accepts every action without doing anything. Used for dry runs.
type NopInvoker struct{}

// Invoke returns nil.
func (NopInvoker) Invoke(ctx context.Context, mode Mode, target string) error {
	return nil
}

// ArmInvoker executes actions on the arm directly via the controller.
type ArmInvoker struct {
	Controller *arm.Controller
	PressDepth float64
	PressHold  time.Duration
	TurnTime   time.Duration
	// ReturnHome moves the arm home after every action. Off during
	// sequences; the caller homes the arm once at the end instead.
	ReturnHome bool
}

// Invoke presses a button or turns a dial by its taught position name.
func (v *ArmInvoker) Invoke(ctx context.Context, mode Mode, target string) error {
	var err error
	switch mode {
	case ModePress:
		err = v.Controller.PressButton(ctx, target, v.PressDepth, v.PressHold, v.ReturnHome)
	case ModeTurn:
		err = v.Controller.TurnDial(ctx, target, v.TurnTime, v.ReturnHome)
	default:
		return fmt.Errorf("unsupported mode %q", mode)
	}
	if err != nil {
		return &InvocationError{Mode: mode, Target: target, Err: err}
	}
	return nil
}

// ExecInvoker shells out to an external action program, passing the mode as
// a flag and the target as its argument, e.g. `prog --turn volume`. The
// program's output passes through untouched; any abnormal termination is
// reported as an InvocationError.
type ExecInvoker struct {
	Program string
	Stdout  io.Writer // nil defaults to os.Stdout
	Stderr  io.Writer // nil defaults to os.Stderr
}

// Invoke runs the external program and waits for it to complete.
func (v *ExecInvoker) Invoke(ctx context.Context, mode Mode, target string) error {
	cmd := exec.CommandContext(ctx, v.Program, "--"+string(mode), target)
	cmd.Stdout = v.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = v.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return &InvocationError{Mode: mode, Target: target, Err: err}
	}
	return nil
}
