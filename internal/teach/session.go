// Package teach implements the interactive position-teaching mode: the
// operator jogs individual servos with single keypresses until the arm sits
// on the button or dial, then saves the pose under a name.
package teach

import (
	"context"
	"fmt"
	"io"
	"time"

	"armpress/internal/arm"
	"armpress/internal/positions"
)

const (
	servoCount = 6

	// nudgeStep is how far one +/- keypress moves the selected servo.
	nudgeStep = 5.0
	// nudgeTime keeps jog movements short so the arm tracks keypresses.
	nudgeTime = 200 * time.Millisecond

	minAngle = 0.0
	maxAngle = 180.0
)

// Session drives interactive teaching. In should be raw terminal input (see
// Terminal); Out receives progress text with explicit CR-LF line endings so
// it renders correctly in raw mode.
type Session struct {
	In         io.Reader
	Out        io.Writer
	Controller *arm.Controller
	Store      *positions.Store

	keys *KeyReader
}

// keyReader returns the shared KeyReader, creating it on first use so
// buffered input survives across chained teach steps.
func (s *Session) keyReader() *KeyReader {
	if s.keys == nil {
		s.keys = NewKeyReader(s.In)
	}
	return s.keys
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format+"\r\n", args...)
}

// Teach runs one teaching session and saves the resulting pose under name.
// It returns false if the operator cancelled without saving.
func (s *Session) Teach(ctx context.Context, name string) (bool, error) {
	pose := arm.HomePose()
	selected := 1

	// Start from the home position so the arm is somewhere predictable.
	if err := s.Controller.MoveToAngles(ctx, pose, arm.DefaultMoveTime); err != nil {
		return false, fmt.Errorf("failed to move to start position: %w", err)
	}

	s.printf("Teaching position %q", name)
	s.printf("  1-6  select servo")
	s.printf("  +/-  nudge selected servo by %.0f degrees", nudgeStep)
	s.printf("  s    save position")
	s.printf("  q    cancel")

	keys := s.keyReader()
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		s.printf("Servo %d at %.0f degrees", selected, pose[selected])

		ev, err := keys.ReadKey()
		if err != nil {
			return false, fmt.Errorf("failed to read key: %w", err)
		}

		switch {
		case ev.Key == KeyCtrlC:
			s.printf("Teaching cancelled")
			return false, nil

		case ev.Key != KeyRune:
			continue

		case ev.Rune == 'q':
			s.printf("Teaching cancelled")
			return false, nil

		case ev.Rune == 's':
			if err := s.Store.Save(name, pose); err != nil {
				return false, fmt.Errorf("failed to save position: %w", err)
			}
			s.printf("Position %q saved", name)
			return true, nil

		case ev.Rune >= '1' && ev.Rune <= '0'+servoCount:
			selected = int(ev.Rune - '0')

		case ev.Rune == '+':
			if err := s.nudge(ctx, pose, selected, nudgeStep); err != nil {
				return false, err
			}

		case ev.Rune == '-':
			if err := s.nudge(ctx, pose, selected, -nudgeStep); err != nil {
				return false, err
			}
		}
	}
}

// nudge moves the selected servo by delta degrees, clamped to the servo
// range. A keypress at the limit is ignored rather than re-sent.
func (s *Session) nudge(ctx context.Context, pose positions.Pose, servo int, delta float64) error {
	next := pose[servo] + delta
	if next < minAngle || next > maxAngle {
		return nil
	}
	pose[servo] = next
	if err := s.Controller.MoveToAngles(ctx, pose, nudgeTime); err != nil {
		return fmt.Errorf("failed to move servo %d: %w", servo, err)
	}
	return nil
}

// TeachDial teaches the three positions a dial turn needs: gripper open at
// the dial, gripper closed on it, and the dial turned. It returns false if
// any step was cancelled.
func (s *Session) TeachDial(ctx context.Context, name string) (bool, error) {
	steps := []struct {
		suffix string
		prompt string
	}{
		{"open", "Position the arm at the dial with the gripper OPEN."},
		{"closed", "Now CLOSE the gripper on the dial."},
		{"turned", "Now TURN the dial to the desired position."},
	}

	s.printf("Teaching dial %q: three positions", name)
	for _, step := range steps {
		s.printf("%s Press any key to continue...", step.prompt)
		if ev, err := s.keyReader().ReadKey(); err != nil {
			return false, fmt.Errorf("failed to read key: %w", err)
		} else if ev.Key == KeyCtrlC {
			s.printf("Teaching cancelled")
			return false, nil
		}

		saved, err := s.Teach(ctx, name+"_"+step.suffix)
		if err != nil {
			return false, err
		}
		if !saved {
			return false, nil
		}
	}

	s.printf("All positions for dial %q saved", name)
	return true, nil
}
